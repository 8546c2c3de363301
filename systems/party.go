package systems

import (
	stdmath "math"

	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/automoto/partyarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// UpdateParty steers the player from its intent, recruits allies that come
// within reach and steers party members after the player.
func UpdateParty(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	playerPos := centerOf(playerEntry)
	playerBody := components.Physics.Get(playerEntry)
	if isDying(playerEntry) {
		playerBody.Velocity = math.Vec2{}
	} else {
		move := gamemath.Normalize(components.Intent.Get(playerEntry).Move)
		playerBody.Velocity = scale(move, playerBody.MaxSpeed)
	}

	reach := components.Player.Get(playerEntry).PartyRadius * cfg.Party.ScaleFactor
	reach2 := reach * reach
	step := dt()

	tags.Ally.Each(ecs.World, func(e *donburi.Entry) {
		party := components.Party.Get(e)
		body := components.Physics.Get(e)
		pos := centerOf(e)
		d2 := gamemath.DistanceSquared(pos, playerPos)

		if !party.InParty {
			if d2 >= reach2 {
				body.Velocity = math.Vec2{}
				return
			}
			party.InParty = true
			logger.Debug("ally joined party",
				zap.String("archetype", string(components.Agent.Get(e).Archetype)),
				zap.Float64("distance", stdmath.Sqrt(d2)),
			)
		}

		dir := gamemath.Direction(pos, playerPos)
		if d2 > reach2 {
			body.Velocity = scale(dir, cfg.Party.CatchUpSpeed)
			return
		}
		v := gamemath.ApplyFriction(body.Velocity, cfg.Party.Friction, step)
		pull := scale(dir, cfg.Party.CohesionAccel*step)
		v = math.Vec2{X: v.X + pull.X, Y: v.Y + pull.Y}
		body.Velocity = gamemath.ClampLength(v, body.MaxSpeed)
	})
}

// PartySize counts allies that have joined the player.
func PartySize(ecs *ecs.ECS) int {
	n := 0
	tags.Ally.Each(ecs.World, func(e *donburi.Entry) {
		if components.Party.Get(e).InParty {
			n++
		}
	})
	return n
}
