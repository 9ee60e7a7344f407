package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pinkLiz/ReactServeBooks/internals/apperrors"
	"github.com/pinkLiz/ReactServeBooks/internals/models"
)

// ListFilter restricts and pages a listing. Titulo, when non-empty, is an
// exact match. Page and Limit are assumed already defaulted by the caller.
type ListFilter struct {
	Titulo string
	Page   int
	Limit  int
}

type LibroRepository interface {
	Create(libro *models.Libro) error
	FindByID(id int) (*models.Libro, error)
	FindByTitulo(titulo string) (*models.Libro, error)
	FindByIsbn(isbn string) (*models.Libro, error)
	FindAll(filter ListFilter) ([]models.Libro, error)
	UpdateFields(libro *models.Libro, fields map[string]any) error
	Save(libro *models.Libro) error
	Delete(libro *models.Libro) error
}

type libroRepo struct {
	db *gorm.DB
}

func NewLibroRepository(db *gorm.DB) LibroRepository {
	return &libroRepo{db: db}
}

// ErrDuplicado marks a write rejected by a unique index. The service
// reports it as the same conflict the pre-check would have produced.
var ErrDuplicado = errors.New("registro duplicado")

func (r *libroRepo) Create(libro *models.Libro) error {
	result := r.db.Create(libro)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return ErrDuplicado
	}
	return result.Error
}

func (r *libroRepo) FindByID(id int) (*models.Libro, error) {
	var libro models.Libro
	result := r.db.First(&libro, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &libro, nil
}

func (r *libroRepo) FindByTitulo(titulo string) (*models.Libro, error) {
	return r.findOne("titulo = ?", titulo)
}

func (r *libroRepo) FindByIsbn(isbn string) (*models.Libro, error) {
	return r.findOne("isbn = ?", isbn)
}

// findOne returns nil, nil when no record matches: callers use the
// lookups as existence checks, not as fetches.
func (r *libroRepo) findOne(query string, arg string) (*models.Libro, error) {
	var libro models.Libro
	result := r.db.Where(query, arg).First(&libro)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &libro, nil
}

func (r *libroRepo) FindAll(filter ListFilter) ([]models.Libro, error) {
	libros := make([]models.Libro, 0)
	query := r.db.Order("genero ASC").Order("id ASC")
	if filter.Titulo != "" {
		query = query.Where("titulo = ?", filter.Titulo)
	}
	offset := (filter.Page - 1) * filter.Limit
	result := query.Limit(filter.Limit).Offset(offset).Find(&libros)
	if result.Error != nil {
		return nil, result.Error
	}
	return libros, nil
}

func (r *libroRepo) UpdateFields(libro *models.Libro, fields map[string]any) error {
	err := r.db.Model(libro).Updates(fields).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicado
	}
	return err
}

func (r *libroRepo) Save(libro *models.Libro) error {
	return r.db.Save(libro).Error
}

func (r *libroRepo) Delete(libro *models.Libro) error {
	return r.db.Delete(libro).Error
}
