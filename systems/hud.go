package systems

import (
	"fmt"

	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD prints the player's health, party size and score in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	defeated := 0
	if game := GetGame(ecs); game != nil {
		defeated = game.EnemiesDefeated
	}

	line := fmt.Sprintf("HP %.0f/%.0f  Party %d  Radius %.0f  Defeated %d",
		hp.Current, hp.Max, PartySize(ecs), player.PartyRadius, defeated)
	text.Draw(screen, line, fonts.Small.Get(), hudMargin, hudMargin+12, cfg.White)
}
