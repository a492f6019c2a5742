package handler

import (
	"sort"
	"strings"

	"soko/internal/delivery/api/middleware"
	"soko/internal/delivery/api/validator"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/proximity"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindRequest decodes the body into req and runs its validate tags.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		details := validator.Details(err)
		fields := make([]string, 0, len(details))
		for field, rule := range details {
			fields = append(fields, field+": "+rule)
		}
		sort.Strings(fields)

		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, "; "))
	}

	return nil
}

// searchInput collects the proximity and paging query values untouched;
// the use case validates them.
func searchInput(c echo.Context) *usecase.SearchInput {
	return &usecase.SearchInput{
		Params: proximity.RawParams{
			Lat:    c.QueryParam("lat"),
			Lng:    c.QueryParam("lng"),
			Radius: c.QueryParam("radius"),
		},
		Page:     c.QueryParam("page"),
		PageSize: c.QueryParam("page_size"),
	}
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

// optionalQueryID parses a UUID filter; an empty value means no filter.
func optionalQueryID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return &id, nil
}

func currentActor(c echo.Context) (usecase.Actor, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return usecase.Actor{}, domainerrors.ErrUnauthorized
	}

	return actor, nil
}
