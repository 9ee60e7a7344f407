package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	logger "github.com/pinkLiz/ReactServeBooks/loggers"

	"github.com/pinkLiz/ReactServeBooks/internals/apperrors"
	"github.com/pinkLiz/ReactServeBooks/internals/repository"
	"github.com/pinkLiz/ReactServeBooks/internals/service"
	"github.com/pinkLiz/ReactServeBooks/internals/validation"
)

type LibroController struct {
	service *service.LibroService
}

func NewLibroController(s *service.LibroService) *LibroController {
	return &LibroController{service: s}
}

func (ctrl *LibroController) CreateLibro(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El cuerpo de la peticion es invalido"})
		return
	}

	input, errs := validation.ValidateCreate(body)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	libro, err := ctrl.service.Create(input)
	if err != nil {
		var conflict *apperrors.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusBadRequest, gin.H{"error": conflict.Message})
			return
		}
		logger.Logger.Error("Hubo un error al crear el libro: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Hubo un error al crear el libro"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": libro})
}

func (ctrl *LibroController) GetLibros(c *gin.Context) {
	filter := repository.ListFilter{
		Titulo: c.Query("titulo"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
	}

	libros, err := ctrl.service.List(filter)
	if err != nil {
		logger.Logger.Error("Hubo un error al obtener libros: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Hubo un error al obtener libros"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": libros})
}

func (ctrl *LibroController) GetLibroByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	libro, err := ctrl.service.GetByID(id)
	if err != nil {
		ctrl.reportError(c, err, "Hubo un error al obtener el libro por id")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": libro})
}

func (ctrl *LibroController) UpdateLibro(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El cuerpo de la peticion es invalido"})
		return
	}

	patch, errs := validation.ValidateUpdate(body)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	libro, err := ctrl.service.Update(id, patch)
	if err != nil {
		ctrl.reportError(c, err, "Hubo un error al actualizar el libro")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": libro})
}

func (ctrl *LibroController) ToggleDisponibilidad(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	libro, err := ctrl.service.ToggleDisponibilidad(id)
	if err != nil {
		ctrl.reportError(c, err, "Hubo un error al editar el campo disponible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": libro})
}

func (ctrl *LibroController) DeleteLibro(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		ctrl.reportError(c, err, "Hubo un error al eliminar el Libro")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Libro eliminado"})
}

// reportError maps service errors to the response contract. Anything not in
// the taxonomy is a store failure: logged and reported as a 500.
func (ctrl *LibroController) reportError(c *gin.Context, err error, logMsg string) {
	var conflict *apperrors.ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": conflict.Message})
	case errors.Is(err, apperrors.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidID.Error()})
	case errors.Is(err, apperrors.ErrImmutableID):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrImmutableID.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrNotFound.Error()})
	default:
		logger.Logger.Error(logMsg, ": ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": logMsg})
	}
}

// pathID parses the :id parameter. The route middleware already rejected
// non-numeric text, so a parse failure here means a direct misuse.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidID.Error()})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
