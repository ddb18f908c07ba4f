package interact

import (
	"context"

	"github.com/jwebster45206/adventure-engine/pkg/dice"
)

// PotionPrice is what the travelling merchant asks for a potion.
const PotionPrice = 20

// TravelTable decides what happens on the road after a move.
var TravelTable = dice.Table{
	{Outcome: dice.Nothing, Weight: 20},
	{Outcome: "find_treasure", Weight: 20},
	{Outcome: "encounter", Weight: 20},
	{Outcome: "weather_change", Weight: 10},
	{Outcome: "trap", Weight: 10},
	{Outcome: "discovery", Weight: 20},
}

// treasureGold is the gold found alongside each kind of treasure.
var treasureGold = map[string]int{
	"gold_coin":        5,
	"silver_necklace":  10,
	"ancient_artifact": 20,
	"magic_ring":       30,
}

var treasureKinds = []string{"gold_coin", "silver_necklace", "ancient_artifact", "magic_ring"}

// TravelEvent resolves one random event on the road.
func TravelEvent(ctx context.Context, env *Env) error {
	switch env.draw("travel", TravelTable) {
	case "find_treasure":
		findTreasure(env)
	case "encounter":
		return encounter(ctx, env)
	case "weather_change":
		w := env.World.ChangeWeather(env.Dice)
		env.say("The weather changes.")
		env.IO.Say(w.Describe())
	case "trap":
		env.say("You stumble into a hidden trap!")
		env.Player.Damage(env.Dice.Between(5, 15))
		env.say("You're injured. Health: %d", env.Player.Health())
	case "discovery":
		discovery(env)
	}
	return nil
}

func findTreasure(env *Env) {
	kind := env.Dice.Pick(treasureKinds...)
	gold := treasureGold[kind]
	env.give(kind)
	env.Player.AddGold(gold)
	env.say("You found a %s and %d gold along the way!", kind, gold)
}

func encounter(ctx context.Context, env *Env) error {
	switch env.Dice.Pick("traveler", "merchant", "lost_child", "wild_animal", "bandit") {
	case "traveler":
		env.say("You meet a friendly traveler who shares some food with you.")
		env.Player.Heal(10)
	case "merchant":
		env.say("A travelling merchant offers you a mysterious potion for %d gold.", PotionPrice)
		if env.Player.Gold < PotionPrice {
			env.say("You can't afford it, so the merchant moves on.")
			return nil
		}
		buy, err := env.confirm(ctx, "Buy the potion? [y/n]: ")
		if err != nil {
			return err
		}
		if !buy {
			env.say("You politely decline.")
			return nil
		}
		if err := env.Player.SpendGold(PotionPrice); err != nil {
			env.say("You can't afford it, so the merchant moves on.")
			return nil
		}
		env.give("mysterious_potion")
		env.say("You bought a mysterious potion.")
	case "lost_child":
		env.say("You help a lost child find their way home. Their parents reward you with 15 gold.")
		env.Player.AddGold(15)
	case "wild_animal":
		env.say("A wild animal attacks you!")
		env.Player.Damage(15)
		env.say("You fend it off, but you're hurt. Health: %d", env.Player.Health())
	case "bandit":
		env.say("A bandit jumps out from behind a tree!")
		if env.Player.HasItem("sword") {
			env.say("You draw your sword and the bandit flees.")
			return nil
		}
		stolen := env.Player.TakeGold(10)
		env.say("The bandit steals %d gold from you.", stolen)
	}
	return nil
}

func discovery(env *Env) {
	switch env.Dice.Pick("hidden_cave", "ruins", "spring", "camp") {
	case "hidden_cave":
		env.say("You notice a small hidden cave off the path, but it's too narrow to enter.")
	case "ruins":
		env.say("You discover ancient ruins and find an old artifact among them.")
		env.give("ancient_artifact")
	case "spring":
		env.say("You find a refreshing spring and drink from it.")
		env.Player.Heal(30)
		env.say("You feel revitalized. Health: %d", env.Player.Health())
	case "camp":
		found := env.Dice.Pick("rope", "torch", "map")
		env.give(found)
		env.say("You stumble upon an abandoned camp and find a %s.", found)
	}
}
