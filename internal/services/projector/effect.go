package projector

import (
	"context"
	"fmt"
	"math"

	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/rating"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
)

// effect returns the new state of every player an approved event touches
func (s *service) effect(ctx context.Context, event *models.StandingEvent) ([]*models.Player, error) {
	switch payload := event.Payload.(type) {
	case models.GameResult:
		return s.applyGame(ctx, event, payload)
	case models.Penalty:
		return s.applyChange(ctx, payload.AsChangeStanding())
	case models.ChangeStanding:
		return s.applyChange(ctx, payload)
	case models.InactivityDecay:
		return s.applyDecay(ctx, payload)
	case models.JoinLeague:
		return s.applyJoin(ctx, payload)
	case models.SetStanding:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPayload, payload.Kind())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPayload, payload)
	}
}

func (s *service) applyGame(ctx context.Context, event *models.StandingEvent, game models.GameResult) ([]*models.Player, error) {
	if hasDuplicates(game.Ranking) {
		return nil, fmt.Errorf("%w: game %d ranks a player twice", ErrInvalidPayload, game.GameID)
	}

	players, err := s.loadAll(ctx, game.Ranking)
	if err != nil {
		return nil, err
	}

	placement := make([]models.Rating, len(players))
	for i, player := range players {
		placement[i] = player.Rating
	}

	updated, err := s.engine.ApplyGameOutcome(placement)
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", game.GameID, err)
	}

	for i, player := range players {
		player.Rating = updated[i]
		player.TouchLastPlayed(event.OccurredAt)
	}

	return players, nil
}

func (s *service) applyChange(ctx context.Context, change models.ChangeStanding) ([]*models.Player, error) {
	players, err := s.loadAll(ctx, dedupe(change.Victims))
	if err != nil {
		return nil, err
	}

	for _, player := range players {
		if change.DeltaRating != nil {
			player.Rating.Mean += *change.DeltaRating
		}
		if change.DeltaDeviation != nil {
			player.Rating.Uncertainty += *change.DeltaDeviation
		}
	}

	return players, nil
}

func (s *service) applyDecay(ctx context.Context, decay models.InactivityDecay) ([]*models.Player, error) {
	players, err := s.loadAll(ctx, dedupe(decay.Victims))
	if err != nil {
		return nil, err
	}

	for _, player := range players {
		player.Rating.Uncertainty = math.Min(player.Rating.Uncertainty+decay.DeltaDeviation, rating.DefaultRating.Uncertainty)
	}

	return players, nil
}

func (s *service) applyJoin(ctx context.Context, join models.JoinLeague) ([]*models.Player, error) {
	victims := dedupe(join.Victims)

	found, err := s.playerRepo.GetPlayers(ctx, &playerRepo.GetPlayersInput{PlayerIDs: victims})
	if err != nil {
		return nil, err
	}

	players := make([]*models.Player, 0, len(victims))
	for _, id := range victims {
		player, ok := found.Players[id]
		if !ok {
			profile, ok := join.ProfileFor(id)
			if !ok {
				return nil, fmt.Errorf("%w: %d has no enrollment profile", ErrMissingReferencedPlayer, id)
			}
			player = &models.Player{
				ID:                id,
				DisplayName:       profile.DisplayName,
				LinkedExternalIDs: profile.ExternalIDs,
			}
		}
		player.Rating = models.Rating{
			Mean:        join.InitialRating,
			Uncertainty: join.InitialDeviation,
		}
		players = append(players, player)
	}

	return players, nil
}

// loadAll returns the players in the order of ids, failing if any is missing
func (s *service) loadAll(ctx context.Context, ids []models.PlayerID) ([]*models.Player, error) {
	found, err := s.playerRepo.GetPlayers(ctx, &playerRepo.GetPlayersInput{PlayerIDs: ids})
	if err != nil {
		return nil, err
	}

	if len(found.Missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingReferencedPlayer, found.Missing)
	}

	players := make([]*models.Player, len(ids))
	for i, id := range ids {
		players[i] = found.Players[id]
	}

	return players, nil
}

func hasDuplicates(ids []models.PlayerID) bool {
	return len(dedupe(ids)) != len(ids)
}

func dedupe(ids []models.PlayerID) []models.PlayerID {
	seen := make(map[models.PlayerID]struct{}, len(ids))
	unique := make([]models.PlayerID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
