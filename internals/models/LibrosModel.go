package models

import "time"

// Generos aceptados para un libro. Cualquier otro valor se rechaza en la
// capa de validacion.
const (
	GeneroNovela         = "novela"
	GeneroRomance        = "romance"
	GeneroCienciaFiccion = "cienciaFiccion"
	GeneroTerror         = "terror"
	GeneroInfantil       = "infantil"
	GeneroFantasia       = "fantasia"
	GeneroOtro           = "otro"
)

var GenerosValidos = []string{
	GeneroNovela,
	GeneroRomance,
	GeneroCienciaFiccion,
	GeneroTerror,
	GeneroInfantil,
	GeneroFantasia,
	GeneroOtro,
}

func EsGeneroValido(genero string) bool {
	for _, g := range GenerosValidos {
		if g == genero {
			return true
		}
	}
	return false
}

type Libro struct {
	ID              uint      `json:"id" gorm:"primaryKey;column:id"`
	Titulo          string    `json:"titulo" gorm:"column:titulo;type:varchar(100);uniqueIndex;not null"`
	Autor           string    `json:"autor" gorm:"column:autor;type:varchar(100);not null"`
	Isbn            string    `json:"isbn" gorm:"column:isbn;type:varchar(30);uniqueIndex;not null"`
	Editorial       string    `json:"editorial" gorm:"column:editorial;type:varchar(100);not null"`
	Sinopsis        string    `json:"sinopsis" gorm:"column:sinopsis;type:text"`
	Genero          string    `json:"genero" gorm:"column:genero;type:varchar(20);default:otro"`
	AnioPublicacion *int      `json:"anioPublicacion" gorm:"column:anio_publicacion"`
	Disponible      bool      `json:"disponible" gorm:"column:disponible"`
	CreatedAt       time.Time `json:"createdAt" gorm:"autoCreateTime;column:created_at"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"autoUpdateTime;column:updated_at"`
}

func (Libro) TableName() string {
	return "libros"
}
