package interact

import (
	"context"

	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

var (
	mountainWeatherTable = dice.Table{
		{Outcome: "clear", Weight: 50},
		{Outcome: "storm", Weight: 50},
	}
	mountainHerbTable = dice.Table{
		{Outcome: "herbs", Weight: 30},
		{Outcome: dice.Nothing, Weight: 70},
	}
	mountainCaveTable = dice.Table{
		{Outcome: "treasure", Weight: 20},
		{Outcome: dice.Nothing, Weight: 80},
	}
)

// Mountain holds the hermit quest's destination at its peak.
type Mountain struct{}

func (Mountain) Interact(ctx context.Context, env *Env) error {
	env.say("You begin your ascent up the steep mountain path.")
	return menu{
		place:    "mountain",
		leave:    "Descend the mountain",
		farewell: "You decide to descend the mountain.",
		actions: []action{
			{label: "Check weather", run: checkMountainWeather},
			{label: "Use climbing gear", run: useClimbingGear},
			{label: "Search for herbs", run: searchForHerbs},
			{label: "Try to reach the peak", run: ReachPeak},
			{label: "Explore mountain cave", run: exploreMountainCave},
		},
	}.run(ctx, env)
}

func checkMountainWeather(ctx context.Context, env *Env) error {
	env.say("You pause to check the weather conditions.")
	if env.draw("mountain_weather", mountainWeatherTable) == "clear" {
		env.World.Weather = world.Clear
		env.say("The skies are clear, offering a breathtaking view of the surrounding lands.")
	} else {
		env.World.Weather = world.Stormy
		env.say("You notice dark clouds gathering. A storm might be approaching.")
	}
	env.IO.Say(env.World.Weather.Describe())
	return nil
}

func useClimbingGear(ctx context.Context, env *Env) error {
	if env.Player.HasItem("rope") {
		env.say("You use your rope to safely navigate a particularly treacherous part of the path.")
		env.Player.Heal(5)
		env.say("Your careful climbing technique leaves you feeling confident.")
		return nil
	}
	env.say("This part of the path looks dangerous. A rope would be useful here.")
	env.Player.Damage(10)
	env.say("You slip and take some damage while climbing. Be more careful!")
	return nil
}

func searchForHerbs(ctx context.Context, env *Env) error {
	env.say("You search the mountainside for rare herbs.")
	if env.draw("mountain_herbs", mountainHerbTable) == "herbs" {
		env.say("You find some rare medicinal herbs!")
		env.give("mountain_herbs")
		return nil
	}
	env.say("You don't find any useful herbs this time.")
	return nil
}

// ReachPeak completes the hermit quest if the player carries the package:
// the package is exchanged for the hermit's blessing and health is restored
// to the maximum.
func ReachPeak(ctx context.Context, env *Env) error {
	env.say("You finally reach the mountain peak!")
	if _, ok := env.Player.RemoveItem("mysterious_package"); ok {
		env.say("You find the hermit's hut and deliver the mysterious package.")
		env.give("hermits_blessing")
		env.Player.HealFully()
		env.World.SetFlag(world.FlagHermitQuestCompleted)
		env.log().Info("hermit quest completed", "player", env.Player.Name)
		env.say("The hermit thanks you and gives you their blessing, which fills you with energy.")
	}
	env.World.SetFlag(world.FlagMountainPeakReached)
	env.say("The view from the top is spectacular. You can see the entire land spread out before you.")
	return nil
}

func exploreMountainCave(ctx context.Context, env *Env) error {
	env.say("You discover a small cave entrance on the mountainside.")
	if !env.Player.HasItem("torch") {
		env.say("It's too dark to explore the cave without a torch.")
		return nil
	}
	env.say("You use your torch to explore the mountain cave.")
	if env.draw("mountain_cave", mountainCaveTable) == "treasure" {
		env.say("You discover an old treasure chest hidden in the cave!")
		env.give("ancient_coin")
		return nil
	}
	env.say("The cave is empty, but it provides good shelter from the elements.")
	return nil
}
