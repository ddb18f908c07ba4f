package interact

import (
	"context"

	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

var (
	forestExploreTable = dice.Table{
		{Outcome: "berries", Weight: 40},
		{Outcome: "animal", Weight: 25},
		{Outcome: "clearing", Weight: 10},
		{Outcome: dice.Nothing, Weight: 25},
	}
	forestListenTable = dice.Table{
		{Outcome: "river", Weight: 20},
		{Outcome: dice.Nothing, Weight: 80},
	}
	forestForageTable = dice.Table{
		{Outcome: "mushrooms", Weight: 30},
		{Outcome: dice.Nothing, Weight: 70},
	}
)

// Forest has no gated actions.
type Forest struct{}

func (Forest) Interact(ctx context.Context, env *Env) error {
	env.say("You enter the lush, green forest. The air is filled with the sounds of birds and rustling leaves.")
	return menu{
		place:    "forest",
		leave:    "Leave the forest",
		farewell: "You decide to leave the forest.",
		actions: []action{
			{label: "Explore deeper", run: exploreForest},
			{label: "Climb a tree", run: climbTree},
			{label: "Listen to the forest", run: listenToForest},
			{label: "Forage for food", run: forage},
		},
	}.run(ctx, env)
}

func exploreForest(ctx context.Context, env *Env) error {
	env.say("You decide to explore deeper into the forest.")
	switch env.draw("forest_explore", forestExploreTable) {
	case "berries":
		env.say("You stumble upon a bush full of ripe berries!")
		env.give("berries")
	case "animal":
		env.say("You encounter a friendly deer. It allows you to approach and pet it.")
		env.Player.Heal(5)
		env.say("The peaceful interaction leaves you feeling refreshed.")
	case "clearing":
		env.say("You discover a beautiful clearing with a small pond.")
		env.World.SetFlag(world.FlagForestClearingDiscovered)
	default:
		env.say("Your exploration yields nothing of note this time.")
	}
	return nil
}

func climbTree(ctx context.Context, env *Env) error {
	env.say("You climb a tall tree to get a better view of the surrounding area.")
	env.say("From up here, you can see the mountain peaks in the distance and what looks like the entrance to a cave.")
	return nil
}

func listenToForest(ctx context.Context, env *Env) error {
	env.say("You stop and listen carefully to the sounds of the forest.")
	if env.draw("forest_listen", forestListenTable) == "river" {
		env.say("You follow the sound of rushing water and find a hidden river!")
		env.World.SetFlag(world.FlagForestRiverDiscovered)
		return nil
	}
	env.say("You hear a faint sound of rushing water in the distance. There might be a river nearby.")
	return nil
}

func forage(ctx context.Context, env *Env) error {
	env.say("You search the forest floor for edible plants and mushrooms.")
	if env.draw("forest_forage", forestForageTable) == "mushrooms" {
		env.say("You find some edible mushrooms!")
		env.give("mushrooms")
		return nil
	}
	env.say("You don't find anything edible this time.")
	return nil
}
