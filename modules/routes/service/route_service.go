package service

import (
	"context"
	"strings"

	"github.com/pavlenko-transit/pickboard/modules/routes/model"
	"github.com/pavlenko-transit/pickboard/modules/routes/ports"
)

// RouteService handles route business logic
type RouteService struct {
	repo ports.RouteRepository
}

// NewRouteService creates a new route service
func NewRouteService(repo ports.RouteRepository) *RouteService {
	return &RouteService{repo: repo}
}

// Create creates a new route after validating the data-model invariants
func (s *RouteService) Create(ctx context.Context, req *model.CreateRouteRequest) (*model.RouteDTO, error) {
	route := &model.Route{
		RunNumber:                  strings.TrimSpace(req.RunNumber),
		TerminalID:                 req.TerminalID,
		Origin:                     req.Origin,
		Destination:                req.Destination,
		Type:                       req.Type,
		Days:                       req.Days,
		StartTime:                  req.StartTime,
		EndTime:                    req.EndTime,
		Distance:                   req.Distance,
		WorkTime:                   req.WorkTime,
		RateType:                   req.RateType,
		RequiresDoublesEndorsement: req.RequiresDoublesEndorsement,
		RequiresChainExperience:    req.RequiresChainExperience,
		Active:                     true,
	}

	if err := route.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, route); err != nil {
		return nil, err
	}

	return route.ToDTO(), nil
}

// GetByID retrieves a route by ID
func (s *RouteService) GetByID(ctx context.Context, routeID string) (*model.RouteDTO, error) {
	route, err := s.repo.GetByID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	return route.ToDTO(), nil
}

// List retrieves routes matching the given options
func (s *RouteService) List(ctx context.Context, opts *ports.ListOptions) ([]*model.RouteDTO, int, error) {
	routes, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*model.RouteDTO, len(routes))
	for i, route := range routes {
		dtos[i] = route.ToDTO()
	}

	return dtos, total, nil
}

// Update updates a route, re-validating invariants after the merge
func (s *RouteService) Update(ctx context.Context, routeID string, req *model.UpdateRouteRequest) (*model.RouteDTO, error) {
	route, err := s.repo.GetByID(ctx, routeID)
	if err != nil {
		return nil, err
	}

	if req.Origin != nil {
		route.Origin = *req.Origin
	}
	if req.Destination != nil {
		route.Destination = *req.Destination
	}
	if req.Days != nil {
		route.Days = *req.Days
	}
	if req.StartTime != nil {
		route.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		route.EndTime = *req.EndTime
	}
	if req.Distance != nil {
		route.Distance = *req.Distance
	}
	if req.WorkTime != nil {
		route.WorkTime = *req.WorkTime
	}
	if req.RequiresDoublesEndorsement != nil {
		route.RequiresDoublesEndorsement = *req.RequiresDoublesEndorsement
	}
	if req.RequiresChainExperience != nil {
		route.RequiresChainExperience = *req.RequiresChainExperience
	}
	if req.Active != nil {
		route.Active = *req.Active
	}

	if err := route.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, route); err != nil {
		return nil, err
	}

	return route.ToDTO(), nil
}

// Delete deletes a route
func (s *RouteService) Delete(ctx context.Context, routeID string) error {
	if _, err := s.repo.GetByID(ctx, routeID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, routeID)
}
