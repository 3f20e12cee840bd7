package aggregation

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation define a ordenação dos rótulos agrupados
type Collation interface {
	Compare(a, b string) int
}

type localeCollation struct {
	pool sync.Pool
}

// NewLocaleCollation cria uma ordenação sensível ao idioma informado.
// collate.Collator não é seguro para uso concorrente, por isso cada
// comparação usa uma instância do pool.
func NewLocaleCollation(tag language.Tag) Collation {
	return &localeCollation{
		pool: sync.Pool{
			New: func() any {
				return collate.New(tag)
			},
		},
	}
}

var japanese = NewLocaleCollation(language.Japanese)

// JapaneseCollation retorna a ordenação padrão dos rótulos (ja)
func JapaneseCollation() Collation {
	return japanese
}

func (c *localeCollation) Compare(a, b string) int {
	col := c.pool.Get().(*collate.Collator)
	defer c.pool.Put(col)

	if r := col.CompareString(a, b); r != 0 {
		return r
	}
	// desempate determinístico para rótulos equivalentes no idioma
	return strings.Compare(a, b)
}

type ordinalCollation struct{}

// OrdinalCollation compara por bytes, para implantações sem ordenação por idioma
func OrdinalCollation() Collation {
	return ordinalCollation{}
}

func (ordinalCollation) Compare(a, b string) int {
	return strings.Compare(a, b)
}
