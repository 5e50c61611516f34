package systems

import (
	"fmt"
	"log"

	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/progression"
	"github.com/automoto/greenie/systems/factory"
	"github.com/automoto/greenie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgression feeds the player's bounds and the confirm and restart
// presses into the level session, then mirrors what changed into the world.
// Runs after collisions so the session sees this tick's position.
func UpdateProgression(ecs *ecs.ECS) {
	session := currentSession(ecs)
	if session == nil {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	input := getOrCreateInput(ecs)
	events := session.Tick(components.Object.Get(playerEntry).Rect(), progression.Input{
		Confirm: GetAction(input, cfg.ActionConfirm).JustPressed,
		Restart: GetAction(input, cfg.ActionRestart).JustPressed,
	})

	for _, ev := range events {
		handleProgressionEvent(ecs, session, playerEntry, ev)
	}
}

func handleProgressionEvent(ecs *ecs.ECS, session *progression.Session, playerEntry *donburi.Entry, ev progression.Event) {
	switch ev.Kind {
	case progression.EventKeyCollected:
		removeCollectible(ecs, ev.Collectible.ID)
		PlaySFX(ecs, cfg.SoundKey)
		ShowNotice(ecs, cfg.Notice.KeyCollected)

	case progression.EventLockUnlocked:
		removeCollectible(ecs, ev.Collectible.ID)
		PlaySFX(ecs, cfg.SoundUnlock)
		ShowNotice(ecs, fmt.Sprintf(cfg.Notice.LockOpened, ev.Unlocked, session.Definition().LockThreshold))

	case progression.EventFinaleRevealed:
		ShowNotice(ecs, cfg.Notice.FinaleRevealed)

	case progression.EventNoKeysAvailable:
		PlaySFX(ecs, cfg.SoundDeny)
		ShowNotice(ecs, cfg.Notice.NoKeys)

	case progression.EventTransition:
		PlaySFX(ecs, cfg.SoundDoor)
		StartFade(ecs, cfg.Transition.FadeTicks)

	case progression.EventRestarted:
		pos, source := session.Spawn()
		factory.MovePlayer(playerEntry, pos)
		SyncCollectibles(ecs, session)
		SnapCamera(ecs)
		ResetNotice(ecs)
		LogLoadReport(session)
		log.Printf("Restarted %s at %s spawn (%.0f, %.0f)", session.Level(), source, pos.X, pos.Y)
	}
}

// SyncCollectibles replaces every key, lock and finale entity with the ones
// the session currently holds.
func SyncCollectibles(ecs *ecs.ECS, session *progression.Session) {
	var stale []donburi.Entity
	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, entity := range stale {
		removeEntity(ecs, entity)
	}

	items := session.Collectibles()
	if key, ok := items.Key(); ok {
		factory.CreateCollectible(ecs, key)
	}
	for _, lock := range items.Locks() {
		factory.CreateCollectible(ecs, lock)
	}
	if finale, ok := items.Finale(); ok {
		factory.CreateCollectible(ecs, finale)
	}
}

// UpdateCollectibles advances the key bob.
func UpdateCollectibles(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TPS)
	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		item := components.Collectible.Get(e)
		if item.Bob == nil {
			return
		}
		offset, done := item.Bob.Update(dt)
		item.Offset = offset
		if done {
			item.Rising = !item.Rising
			if item.Rising {
				item.Bob = factory.NewBob(0, -cfg.Collectible.BobHeight)
			} else {
				item.Bob = factory.NewBob(-cfg.Collectible.BobHeight, 0)
			}
		}
	})
}

// LogLoadReport writes the warnings collected while loading the session.
func LogLoadReport(session *progression.Session) {
	report := session.Report()
	for _, issue := range report.Issues {
		log.Printf("Warning: [%s] %s", session.ID(), issue)
	}
}

func removeCollectible(ecs *ecs.ECS, id string) {
	var found donburi.Entity
	ok := false
	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		if !ok && components.Collectible.Get(e).ID == id {
			found, ok = e.Entity(), true
		}
	})
	if ok {
		removeEntity(ecs, found)
	}
}

// removeEntity deletes an entity and its collision object.
func removeEntity(ecs *ecs.ECS, entity donburi.Entity) {
	entry := ecs.World.Entry(entity)
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(entity)
}
