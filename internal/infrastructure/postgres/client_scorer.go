package postgres

import (
	"context"
	"fmt"

	"github.com/tenaxis/tenaxis-api/internal/application/orders"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

var _ orders.ClientScorer = (*ClientScorer)(nil)

// ClientScorer recalcula el puntaje A/B/C del cliente a partir de sus órdenes
// liquidadas. Lo invoca el caso de uso de órdenes al entrar o salir de
// LIQUIDADA.
type ClientScorer struct {
	clients repository.ClientRepository
}

// NewClientScorer construye el recalculador.
func NewClientScorer(clients repository.ClientRepository) *ClientScorer {
	return &ClientScorer{clients: clients}
}

// Recalculate cuenta las órdenes liquidadas del cliente y actualiza su
// puntaje según los umbrales de entity.Score*.
func (s *ClientScorer) Recalculate(ctx context.Context, clientID string) error {
	count, err := s.clients.CountLiquidatedOrders(clientID)
	if err != nil {
		return fmt.Errorf("count liquidated orders: %w", err)
	}
	score := entity.ScoreC
	switch {
	case count >= 10:
		score = entity.ScoreA
	case count >= 3:
		score = entity.ScoreB
	}
	if err := s.clients.UpdateScore(clientID, score); err != nil {
		return fmt.Errorf("update client score: %w", err)
	}
	return nil
}
