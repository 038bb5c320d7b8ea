package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clima-api/internal/domain/entity"
	"clima-api/internal/domain/model"
	"clima-api/internal/domain/usecase/favorites"
	"clima-api/pkg/util/numberutils"
)

type FavoritesController struct {
	api     *echo.Group
	useCase favorites.UseCase
}

func NewFavoritesController(api *echo.Group, useCase favorites.UseCase) *FavoritesController {
	return &FavoritesController{api: api, useCase: useCase}
}

// InitFavoritesRoutes initializes favorites routes
func (controller *FavoritesController) InitFavoritesRoutes() {
	controller.api.GET("/favorites", controller.ListFavorites)
	controller.api.POST("/favorites", controller.AddFavorite)
	controller.api.POST("/favorites/toggle", controller.ToggleFavorite)
	controller.api.DELETE("/favorites", controller.RemoveFavorite)
}

// ListFavorites godoc
// @Summary List favorite cities
// @Description Favorite cities in insertion order
// @Tags favorites
// @Produce json
// @Success 200 {array} entity.CitySearchResult "Favorite cities"
// @Router /favorites [get]
func (controller *FavoritesController) ListFavorites(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.List())
}

// AddFavorite godoc
// @Summary Add a favorite city
// @Description Idempotent on exact (lat, lon); a duplicate add is a no-op
// @Tags favorites
// @Accept json
// @Produce json
// @Param city body model.FavoriteCityDTO true "City to favorite"
// @Success 201 {array} entity.CitySearchResult "Resulting favorites list"
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Router /favorites [post]
func (controller *FavoritesController) AddFavorite(c echo.Context) error {
	city, err := bindFavorite(c)
	if err != nil {
		return badRequest(c, "invalid favorite city payload")
	}

	controller.useCase.Add(city)
	return c.JSON(http.StatusCreated, controller.useCase.List())
}

// ToggleFavorite godoc
// @Summary Toggle a favorite city
// @Description Adds the city when absent, removes it when present
// @Tags favorites
// @Accept json
// @Produce json
// @Param city body model.FavoriteCityDTO true "City to toggle"
// @Success 200 {object} map[string]bool "Resulting membership"
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Router /favorites/toggle [post]
func (controller *FavoritesController) ToggleFavorite(c echo.Context) error {
	city, err := bindFavorite(c)
	if err != nil {
		return badRequest(c, "invalid favorite city payload")
	}

	isFavorite := controller.useCase.Toggle(city)
	return c.JSON(http.StatusOK, map[string]bool{"favorite": isFavorite})
}

// RemoveFavorite godoc
// @Summary Remove a favorite city
// @Description Removal by exact coordinates; removing a non-member is a no-op
// @Tags favorites
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 204 "Removed"
// @Failure 400 {object} model.ErrorResponse "Missing coordinates"
// @Router /favorites [delete]
func (controller *FavoritesController) RemoveFavorite(c echo.Context) error {
	lat, latErr := numberutils.ToFloat64WithError(c.QueryParam("lat"))
	lon, lonErr := numberutils.ToFloat64WithError(c.QueryParam("lon"))
	if latErr != nil || lonErr != nil {
		return badRequest(c, "lat and lon are required")
	}

	controller.useCase.Remove(entity.CitySearchResult{Lat: lat, Lon: lon})
	return c.NoContent(http.StatusNoContent)
}

// bindFavorite binds and validates the favorite city body.
func bindFavorite(c echo.Context) (entity.CitySearchResult, error) {
	var dto model.FavoriteCityDTO
	if err := c.Bind(&dto); err != nil {
		return entity.CitySearchResult{}, err
	}
	if err := c.Validate(&dto); err != nil {
		return entity.CitySearchResult{}, err
	}

	return entity.CitySearchResult{
		Name:    dto.Name,
		Country: dto.Country,
		State:   dto.State,
		Lat:     dto.Lat,
		Lon:     dto.Lon,
	}, nil
}
