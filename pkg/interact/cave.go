package interact

import (
	"context"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// LitNote is appended to the cave description when a torch lights it.
const LitNote = "The cave is now well-lit by your torch."

// Exploration tables. Without light the odds of treasure drop and the odds of
// getting hurt rise.
var (
	CaveExploreLit = dice.Table{
		{Outcome: "treasure", Weight: 30},
		{Outcome: "hazard", Weight: 20},
		{Outcome: "boon", Weight: 15},
		{Outcome: dice.Nothing, Weight: 35},
	}
	CaveExploreDark = dice.Table{
		{Outcome: "treasure", Weight: 10},
		{Outcome: "hazard", Weight: 40},
		{Outcome: "mishap", Weight: 30},
		{Outcome: dice.Nothing, Weight: 20},
	}

	CaveSearchLit = dice.Table{
		{Outcome: "passage", Weight: 20},
		{Outcome: "writing", Weight: 15},
		{Outcome: dice.Nothing, Weight: 65},
	}
	CaveSearchDark = dice.Table{
		{Outcome: "passage", Weight: 5},
		{Outcome: "mishap", Weight: 35},
		{Outcome: dice.Nothing, Weight: 60},
	}
)

var (
	caveTreasureTable = dice.Table{
		{Outcome: "gold", Weight: 60},
		{Outcome: "gemstone", Weight: 40},
	}
	caveMineTable = dice.Table{
		{Outcome: "gemstone", Weight: 25},
		{Outcome: "gold", Weight: 15},
		{Outcome: "cave_in", Weight: 10},
		{Outcome: dice.Nothing, Weight: 50},
	}
	caveLooseGemTable = dice.Table{
		{Outcome: "gemstone", Weight: 10},
		{Outcome: dice.Nothing, Weight: 90},
	}
	caveListenTable = dice.Table{
		{Outcome: "water", Weight: 40},
		{Outcome: "creature", Weight: 20},
		{Outcome: dice.Nothing, Weight: 40},
	}
	caveDreamTable = dice.Table{
		{Outcome: "dream", Weight: 20},
		{Outcome: dice.Nothing, Weight: 80},
	}
)

// Cave is dark unless the player carries a torch.
type Cave struct{}

// CaveLit reports whether the player can see in the current location.
func CaveLit(p *actor.Player, loc *world.Location) bool {
	return p.HasItem("torch") || loc.Lit
}

// ExploreTable returns the exploration table for the lighting conditions.
func ExploreTable(lit bool) dice.Table {
	if lit {
		return CaveExploreLit
	}
	return CaveExploreDark
}

// SearchTable returns the passage-search table for the lighting conditions.
func SearchTable(lit bool) dice.Table {
	if lit {
		return CaveSearchLit
	}
	return CaveSearchDark
}

func (Cave) Interact(ctx context.Context, env *Env) error {
	env.say("You enter the dark, mysterious cave. The air is cool and damp.")
	loc := env.World.Current()
	if env.Player.HasItem("torch") {
		if loc.Light(LitNote) {
			env.say("You light your torch, illuminating the dark cave around you.")
		}
	} else if !loc.Lit {
		env.say("It's very dark in here. You can barely see anything. A torch would be useful.")
	}

	return menu{
		place:    "cave",
		leave:    "Leave the cave",
		farewell: "You decide to leave the cave.",
		actions: []action{
			{label: "Explore deeper", run: ExploreCave},
			{label: "Mine for minerals", run: mineCave},
			{label: "Listen to the cave", run: listenToCave},
			{label: "Search for hidden passages", run: searchPassages},
			{label: "Rest in the cave", run: restInCave},
		},
	}.run(ctx, env)
}

// ExploreCave ventures deeper, drawing from the lit or dark table.
func ExploreCave(ctx context.Context, env *Env) error {
	lit := CaveLit(env.Player, env.World.Current())
	if lit {
		env.say("You venture deeper into the cave, your torch illuminating the way.")
	} else {
		env.say("You feel your way deeper into the darkness.")
	}

	switch env.draw("cave_explore", ExploreTable(lit)) {
	case "treasure":
		env.say("You discover a small treasure chest hidden in a crevice!")
		if env.draw("cave_treasure", caveTreasureTable) == "gold" {
			env.say("Inside, you find some gold coins!")
			env.Player.AddGold(25)
		} else {
			env.say("Inside, you find a sparkling gemstone!")
			env.give("gemstone")
		}
	case "hazard":
		env.say("A swarm of bats suddenly flies past you, startled by your presence!")
		if lit {
			env.say("You're disoriented by the bats and stumble, hurting yourself.")
			env.Player.Damage(5)
		} else {
			env.say("In the darkness, you panic and get scratched by the bats.")
			env.Player.Damage(10)
		}
	case "boon":
		env.say("You discover a beautiful underground lake with crystal-clear water.")
		env.say("The water seems to have healing properties.")
		env.Player.Heal(15)
		env.World.SetFlag(world.FlagUndergroundLake)
	case "mishap":
		env.say("You trip over an unseen rock and hurt yourself.")
		env.Player.Damage(5)
	default:
		env.say("You explore for a while but find nothing of interest.")
	}
	return nil
}

func mineCave(ctx context.Context, env *Env) error {
	env.say("You search the cave walls for valuable minerals.")
	if !env.Player.HasItem("pickaxe") {
		env.say("You examine the cave walls but can't extract anything without proper tools.")
		if env.draw("cave_loose_gem", caveLooseGemTable) == "gemstone" {
			env.say("However, you spot a loose gemstone that you can pick up without tools!")
			env.give("gemstone")
		}
		return nil
	}

	env.say("You use your pickaxe to chip away at promising spots in the rock.")
	switch env.draw("cave_mine", caveMineTable) {
	case "gemstone":
		env.say("You discover a beautiful gemstone embedded in the rock!")
		env.give("gemstone")
	case "gold":
		env.say("You find a small vein of gold in the rock and extract 15 gold worth of ore.")
		env.Player.AddGold(15)
	case "cave_in":
		env.say("Your mining causes a small cave-in! Rocks fall from the ceiling!")
		env.Player.Damage(15)
	default:
		env.say("Despite your efforts, you don't find anything valuable this time.")
	}
	return nil
}

func listenToCave(ctx context.Context, env *Env) error {
	env.say("You stand still and listen carefully to the sounds of the cave.")
	switch env.draw("cave_listen", caveListenTable) {
	case "water":
		env.say("You hear the sound of running water somewhere deeper in the cave.")
		if !env.World.Flag(world.FlagUndergroundLake) {
			env.say("There might be an underground lake or river nearby.")
		}
	case "creature":
		env.say("You hear strange noises coming from deeper in the cave.")
		env.World.SetFlag(world.FlagCaveCreatureHeard)
	default:
		env.say("The cave is eerily silent except for the occasional drip of water.")
	}
	return nil
}

func searchPassages(ctx context.Context, env *Env) error {
	lit := CaveLit(env.Player, env.World.Current())
	env.say("You carefully search the cave walls for hidden passages or secret chambers.")

	switch env.draw("cave_search", SearchTable(lit)) {
	case "passage":
		env.say("You discover a narrow passage hidden behind a rock formation!")
		if !env.World.Flag(world.FlagHiddenPassage) {
			env.say("This passage might lead to unexplored parts of the cave system.")
			env.World.SetFlag(world.FlagHiddenPassage)
		}
	case "writing":
		env.say("You discover ancient writings carved into the cave wall!")
		env.World.SetFlag(world.FlagAncientWriting)
	case "mishap":
		env.say("Groping blindly along the wall, you scrape your hands on sharp rock.")
		env.Player.Damage(5)
	default:
		env.say("Your search reveals nothing unusual about the cave walls.")
	}
	return nil
}

func restInCave(ctx context.Context, env *Env) error {
	env.say("You find a relatively comfortable spot and decide to rest for a while.")
	env.Player.Heal(10)
	env.say("The rest has restored some of your energy.")
	if env.draw("cave_dream", caveDreamTable) == "dream" {
		env.say("While resting, you dream about a hidden treasure deeper in the cave.")
		env.say("When you wake up, you feel oddly refreshed and more perceptive.")
		env.Player.ModifyAttribute(actor.Perception, 2)
	}
	return nil
}
