package load

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"truck-dispatch/internal/domain"
)

type cachedLoad struct {
	ID          uuid.UUID `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	CargoType   string    `json:"cargoType"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func encodeList(list []domain.Load) ([]byte, error) {
	out := make([]cachedLoad, 0, len(list))
	for _, l := range list {
		out = append(out, cachedLoad{
			ID:          l.ID,
			Origin:      l.Origin,
			Destination: l.Destination,
			CargoType:   l.CargoType,
			Status:      string(l.Status),
			CreatedAt:   l.CreatedAt.UTC(),
		})
	}
	return json.Marshal(out)
}

func decodeList(b []byte) ([]domain.Load, error) {
	var in []cachedLoad
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, err
	}
	out := make([]domain.Load, 0, len(in))
	for _, c := range in {
		out = append(out, domain.Load{
			ID:          c.ID,
			Origin:      c.Origin,
			Destination: c.Destination,
			CargoType:   c.CargoType,
			Status:      domain.LoadStatus(c.Status),
			CreatedAt:   c.CreatedAt.UTC(),
		})
	}
	return out, nil
}
