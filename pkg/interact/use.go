package interact

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/item"
)

// Use applies the effect of a carried item. It reports whether the item did
// anything.
func Use(ctx context.Context, env *Env, name string) (bool, error) {
	it, ok := env.Player.Item(name)
	if !ok {
		env.say("You don't have %s in your inventory.", name)
		return false, nil
	}
	def, _ := env.Items.Lookup(it.Name)

	var (
		used bool
		err  error
	)
	switch it.Effect {
	case item.EffectRevealExits:
		used = revealExits(env)
	case item.EffectEat:
		used = eat(env, it, def)
	case item.EffectRiskyFood:
		used, err = eatRisky(env, it, def)
	case item.EffectLight:
		used = lightTorch(env, it)
	case item.EffectAppraise:
		used, err = appraise(ctx, env, it, def)
	default:
		env.say("You're not sure how to use the %s.", it.Name)
	}
	if err != nil {
		return false, err
	}

	if used && def.Consumable {
		env.Player.RemoveItem(it.Name)
	}
	if used {
		env.log().Debug("item used", "item", it.Name, "effect", it.Effect, "health", env.Player.Health())
	}
	return used, nil
}

func revealExits(env *Env) bool {
	env.say("You look at the map. From here you can reach: %s.",
		strings.Join(env.World.AvailableLocations(), ", "))
	return true
}

func eat(env *Env, it item.Item, def item.Definition) bool {
	env.say("You eat the %s.", it.Name)
	env.Player.Heal(def.Heal)
	env.say("You feel better. Health: %d", env.Player.Health())
	return true
}

func eatRisky(env *Env, it item.Item, def item.Definition) (bool, error) {
	env.say("You eat the %s.", it.Name)
	outcome, err := env.Dice.Draw(dice.Table{
		{Outcome: "sick", Weight: def.RiskPercent},
		{Outcome: "fine", Weight: 100 - def.RiskPercent},
	})
	if err != nil {
		return false, fmt.Errorf("item %s: %w", it.Name, err)
	}
	if outcome == "sick" {
		env.Player.Damage(def.Damage)
		env.say("That didn't agree with you. You feel sick. Health: %d", env.Player.Health())
		return true, nil
	}
	env.Player.Heal(def.Heal)
	env.say("Delicious! You feel better. Health: %d", env.Player.Health())
	return true, nil
}

func lightTorch(env *Env, it item.Item) bool {
	loc := env.World.Current()
	if !strings.EqualFold(loc.Name, CaveName) {
		env.say("You don't need to light the %s here.", it.Name)
		return false
	}
	if !loc.Light(LitNote) {
		env.say("The cave is already lit.")
		return false
	}
	env.say("You light the %s. The cave is now illuminated.", it.Name)
	return true
}

func appraise(ctx context.Context, env *Env, it item.Item, def item.Definition) (bool, error) {
	if !strings.EqualFold(env.World.CurrentLocation, VillageName) {
		env.say("The %s looks valuable. A merchant in the village might buy it.", it.Name)
		return false, nil
	}
	sell, err := env.confirm(ctx, fmt.Sprintf("A merchant offers you %d gold for the %s. Sell it? [y/n]: ", def.Value, it.Name))
	if err != nil {
		return false, err
	}
	if !sell {
		env.say("You decide to keep the %s.", it.Name)
		return false, nil
	}
	env.Player.RemoveItem(it.Name)
	env.Player.AddGold(def.Value)
	env.log().Info("item sold", "item", it.Name, "gold", def.Value)
	env.say("You sold the %s for %d gold.", it.Name, def.Value)
	return true, nil
}
