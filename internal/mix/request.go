package mix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Request holds the nine mix-design and geotechnical inputs for one evaluation.
// It is rebuilt from the form on every change and never stored.
type Request struct {
	FA   float64 `yaml:"fa" json:"fa" validate:"gte=0,lte=100"`
	SCBA float64 `yaml:"scba" json:"scba" validate:"gte=0,lte=100"`
	EC   float64 `yaml:"ec" json:"ec" validate:"gte=0,lte=100"`
	LL   float64 `yaml:"ll" json:"ll" validate:"gte=20,lte=120"`
	PI   float64 `yaml:"pi" json:"pi" validate:"gte=5,lte=80"`
	FSI  float64 `yaml:"fsi" json:"fsi" validate:"gte=0,lte=200"`
	MDUW float64 `yaml:"mduw" json:"mduw" validate:"gte=10,lte=25"`
	OMC  float64 `yaml:"omc" json:"omc" validate:"gte=5,lte=40"`
	UCS  float64 `yaml:"ucs" json:"ucs" validate:"gte=50,lte=1000"`
}

// ErrUnknownParam is returned for a key outside the catalogue.
var ErrUnknownParam = errors.New("unknown parameter")

var requestValidate = validator.New()

// Defaults returns a Request populated with every parameter's default.
func Defaults() Request {
	var r Request
	for _, p := range catalogue {
		r, _ = r.With(p.Key, p.Default)
	}
	return r
}

// Get returns the value of the named field.
func (r Request) Get(key string) (float64, error) {
	switch key {
	case KeyFA:
		return r.FA, nil
	case KeySCBA:
		return r.SCBA, nil
	case KeyEC:
		return r.EC, nil
	case KeyLL:
		return r.LL, nil
	case KeyPI:
		return r.PI, nil
	case KeyFSI:
		return r.FSI, nil
	case KeyMDUW:
		return r.MDUW, nil
	case KeyOMC:
		return r.OMC, nil
	case KeyUCS:
		return r.UCS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, key)
}

// With returns a copy of r with the named field set to v.
func (r Request) With(key string, v float64) (Request, error) {
	switch key {
	case KeyFA:
		r.FA = v
	case KeySCBA:
		r.SCBA = v
	case KeyEC:
		r.EC = v
	case KeyLL:
		r.LL = v
	case KeyPI:
		r.PI = v
	case KeyFSI:
		r.FSI = v
	case KeyMDUW:
		r.MDUW = v
	case KeyOMC:
		r.OMC = v
	case KeyUCS:
		r.UCS = v
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownParam, key)
	}
	return r, nil
}

// Clamped returns a copy of r with every field forced into its range.
func (r Request) Clamped() Request {
	out := r
	for _, p := range catalogue {
		v, _ := r.Get(p.Key)
		out, _ = out.With(p.Key, p.Clamp(v))
	}
	return out
}

// Vector returns the feature vector in the order
// [FA, SCBA, EC, LL, PI, FSI, MDUW, OMC, UCS].
func (r Request) Vector() []float64 {
	return []float64{r.FA, r.SCBA, r.EC, r.LL, r.PI, r.FSI, r.MDUW, r.OMC, r.UCS}
}

// Composition returns FA + SCBA + EC.
func (r Request) Composition() float64 {
	return r.FA + r.SCBA + r.EC
}

// Validate rejects any field outside its accepted range.
func (r Request) Validate() error {
	err := requestValidate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		p, _ := Lookup(fe.Field())
		msgs = append(msgs, fmt.Sprintf("%s=%v outside %s", fe.Field(), fe.Value(), p.RangeLabel()))
	}
	return &RangeError{Fields: msgs}
}

// RangeError lists every field that fell outside its range.
type RangeError struct {
	Fields []string
}

func (e *RangeError) Error() string {
	return "out of range: " + strings.Join(e.Fields, "; ")
}
