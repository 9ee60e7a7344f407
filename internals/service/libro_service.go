// Package service implements the catalog operations. Handlers re-check the
// id on their own so the rules hold for direct callers too, not only for
// requests that went through the router's parameter validation.
package service

import (
	"errors"

	"github.com/pinkLiz/ReactServeBooks/internals/apperrors"
	"github.com/pinkLiz/ReactServeBooks/internals/models"
	"github.com/pinkLiz/ReactServeBooks/internals/repository"
	"github.com/pinkLiz/ReactServeBooks/internals/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type LibroService struct {
	repo repository.LibroRepository
}

func NewLibroService(repo repository.LibroRepository) *LibroService {
	return &LibroService{repo: repo}
}

// Create inserts a new record after checking that no existing record holds
// the same titulo or isbn. The unique indexes back the check up: a racing
// insert that slips past it is reported as the same conflict.
func (s *LibroService) Create(input *validation.CreateInput) (*models.Libro, error) {
	if input.Titulo != "" {
		existente, err := s.repo.FindByTitulo(input.Titulo)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, apperrors.NewConflict("El libro con ese titulo ya existe")
		}
	}

	if input.Isbn != "" {
		existente, err := s.repo.FindByIsbn(input.Isbn)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, apperrors.NewConflict("El libro con ese ISBN ya existe")
		}
	}

	libro := &models.Libro{
		Titulo:          input.Titulo,
		Autor:           input.Autor,
		Isbn:            input.Isbn,
		Editorial:       input.Editorial,
		Sinopsis:        input.Sinopsis,
		Genero:          input.Genero,
		AnioPublicacion: input.AnioPublicacion,
		Disponible:      input.Disponible,
	}
	if err := s.repo.Create(libro); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, apperrors.NewConflict("El libro con ese titulo o ISBN ya existe")
		}
		return nil, err
	}
	return libro, nil
}

// List returns the requested page ordered by genero. An empty result is not
// an error.
func (s *LibroService) List(filter repository.ListFilter) ([]models.Libro, error) {
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	return s.repo.FindAll(filter)
}

func (s *LibroService) GetByID(id int) (*models.Libro, error) {
	if id <= 0 {
		return nil, apperrors.ErrInvalidID
	}
	return s.repo.FindByID(id)
}

// Update applies only the fields present in the patch. A patch that carried
// an id key is rejected outright, whatever the value was.
func (s *LibroService) Update(id int, patch *validation.UpdatePatch) (*models.Libro, error) {
	if id <= 0 {
		return nil, apperrors.ErrInvalidID
	}
	if patch.IDPresent() {
		return nil, apperrors.ErrImmutableID
	}

	libro, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if len(patch.Fields()) > 0 {
		if err := s.repo.UpdateFields(libro, patch.Fields()); err != nil {
			if errors.Is(err, repository.ErrDuplicado) {
				return nil, apperrors.NewConflict("El libro con ese titulo o ISBN ya existe")
			}
			return nil, err
		}
	}
	return s.repo.FindByID(id)
}

// ToggleDisponibilidad flips disponible. Two calls restore the original
// value.
func (s *LibroService) ToggleDisponibilidad(id int) (*models.Libro, error) {
	if id <= 0 {
		return nil, apperrors.ErrInvalidID
	}

	libro, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	libro.Disponible = !libro.Disponible
	if err := s.repo.Save(libro); err != nil {
		return nil, err
	}
	return libro, nil
}

func (s *LibroService) Delete(id int) error {
	if id <= 0 {
		return apperrors.ErrInvalidID
	}

	libro, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	return s.repo.Delete(libro)
}
