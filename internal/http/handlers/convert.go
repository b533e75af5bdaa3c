package handlers

import "truck-dispatch/internal/domain"

func driverToResponse(d domain.Driver) driverDTO {
	return driverDTO{
		ID:            d.ID.String(),
		Name:          d.Name,
		LicenseNumber: d.LicenseNumber,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
	}
}

func loadToResponse(l domain.Load) loadDTO {
	return loadDTO{
		ID:          l.ID.String(),
		Origin:      l.Origin,
		Destination: l.Destination,
		CargoType:   l.CargoType,
		Status:      string(l.Status),
		CreatedAt:   l.CreatedAt,
	}
}

func loadsToResponse(list []domain.Load) []loadDTO {
	out := make([]loadDTO, 0, len(list))
	for _, l := range list {
		out = append(out, loadToResponse(l))
	}
	return out
}

func (req updateLoadRequest) toModel() domain.PartialLoadUpdate {
	u := domain.PartialLoadUpdate{
		Origin:      req.Origin,
		Destination: req.Destination,
		CargoType:   req.CargoType,
	}
	if req.Status != nil {
		st := domain.LoadStatus(*req.Status)
		u.Status = &st
	}
	return u
}

func assignmentToResponse(a domain.Assignment) assignmentDTO {
	out := assignmentDTO{
		ID:          a.ID.String(),
		DriverID:    a.DriverID.String(),
		LoadID:      a.LoadID.String(),
		Status:      string(a.Status),
		AssignedAt:  a.AssignedAt,
		CompletedAt: a.CompletedAt,
	}
	if a.Driver != nil {
		d := driverToResponse(*a.Driver)
		out.Driver = &d
	}
	if a.Load != nil {
		l := loadToResponse(*a.Load)
		out.Load = &l
	}
	return out
}
