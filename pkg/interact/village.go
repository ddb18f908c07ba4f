package interact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/item"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

const (
	InnPrice = 10
	InnHeal  = 50
)

var ErrNotForSale = errors.New("item not for sale")

var (
	villageTalkTable = dice.Table{
		{Outcome: "rumor", Weight: 40},
		{Outcome: "advice", Weight: 30},
		{Outcome: dice.Nothing, Weight: 30},
	}
	villageQuestTable = dice.Table{
		{Outcome: "quest", Weight: 30},
		{Outcome: dice.Nothing, Weight: 70},
	}
)

// Village has a shop, an inn and a quest board.
type Village struct{}

func (Village) Interact(ctx context.Context, env *Env) error {
	env.say("You enter the bustling village. Villagers go about their daily lives around you.")
	return menu{
		place:    "village",
		leave:    "Leave the village",
		farewell: "You decide to leave the village.",
		actions: []action{
			{label: "Visit the shop", run: visitShop},
			{label: "Talk to villagers", run: talkToVillagers},
			{label: "Visit the inn", run: visitInn},
			{label: "Check for quests", run: checkQuestBoard},
		},
	}.run(ctx, env)
}

// Buy checks the price, debits gold and hands over the item as one step.
// Nothing changes if the item is not sold or the player cannot pay.
func Buy(p *actor.Player, catalog *item.Catalog, name string) (item.Item, error) {
	def, ok := catalog.Lookup(name)
	if !ok || def.Price <= 0 {
		return item.Item{}, fmt.Errorf("%w: %s", ErrNotForSale, name)
	}
	if err := p.SpendGold(def.Price); err != nil {
		return item.Item{}, err
	}
	it := catalog.Create(def.Name)
	p.AddItem(it)
	return it, nil
}

// PriceList formats the shop's stock.
func PriceList(catalog *item.Catalog) string {
	var parts []string
	for _, d := range catalog.ShopItems() {
		parts = append(parts, fmt.Sprintf("%s (%d gold)", d.Name, d.Price))
	}
	return strings.Join(parts, ", ")
}

func visitShop(ctx context.Context, env *Env) error {
	env.say("You enter the village shop. The shopkeeper greets you warmly.")
	env.say("Available items: %s", PriceList(env.Items))

	for {
		answer, err := env.IO.Ask(ctx, "What would you like to buy? (or 'exit' to leave): ")
		if err != nil {
			return err
		}
		choice := strings.ToLower(strings.TrimSpace(answer))
		if choice == "exit" || choice == "" {
			env.say("You thank the shopkeeper and step back outside.")
			return nil
		}

		it, err := Buy(env.Player, env.Items, choice)
		switch {
		case errors.Is(err, ErrNotForSale):
			env.say("The shopkeeper doesn't sell %s.", choice)
		case errors.Is(err, actor.ErrInsufficientGold):
			env.say("You don't have enough gold for the %s.", choice)
		case err != nil:
			env.log().Warn("shop purchase failed", "item", choice, "error", err)
			env.say("The shopkeeper shakes their head.")
		default:
			env.log().Info("item purchased", "item", it.Name, "gold_left", env.Player.Gold)
			env.say("You bought the %s. You have %d gold left.", it.Name, env.Player.Gold)
		}
	}
}

func talkToVillagers(ctx context.Context, env *Env) error {
	env.say("You approach a group of villagers to chat.")
	switch env.draw("village_talk", villageTalkTable) {
	case "rumor":
		env.say("You overhear an interesting rumor about treasure hidden in the nearby cave.")
	case "advice":
		env.say("An old villager gives you advice about surviving in the forest.")
		env.Player.Heal(10)
		env.say("Their wisdom makes you feel more prepared for your adventures.")
	default:
		env.say("You have a pleasant but uneventful conversation with the villagers.")
	}
	return nil
}

func visitInn(ctx context.Context, env *Env) error {
	env.say("You enter the cozy village inn.")
	if env.Player.Gold < InnPrice {
		env.say("You don't have enough gold to stay the night.")
		return nil
	}

	stay, err := env.confirm(ctx, fmt.Sprintf("Would you like to rest for the night? (%d gold) [y/n]: ", InnPrice))
	if err != nil {
		return err
	}
	if !stay {
		env.say("You decide not to stay the night.")
		return nil
	}
	if err := env.Player.SpendGold(InnPrice); err != nil {
		env.say("You don't have enough gold to stay the night.")
		return nil
	}
	env.Player.Heal(InnHeal)
	env.say("You have a good night's rest and feel rejuvenated.")
	return nil
}

func checkQuestBoard(ctx context.Context, env *Env) error {
	env.say("You check the village quest board.")
	if env.Player.HasItem("mysterious_package") {
		env.say("You are still carrying the hermit's package. Deliver it at the mountain peak.")
		return nil
	}
	if env.draw("village_quest", villageQuestTable) != "quest" {
		env.say("There are no new quests posted today.")
		return nil
	}
	env.say("You accept a quest to deliver a package to a hermit living on the mountain.")
	env.give("mysterious_package")
	env.World.SetFlag(world.FlagHermitQuestAccepted)
	env.say("Complete this quest by reaching the mountain peak.")
	return nil
}
