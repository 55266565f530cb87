package grid

import (
	"fmt"

	"github.com/ugorji/go/codec"
)

// gridRecord is the serialized form of a Grid
type gridRecord struct {
	Name     string
	Labels   []string
	Min, Max float64
	NBins    int
	Periodic bool
	Values   []float64
	Derivs   []float64
}

// MarshalBinary encodes the grid in msgpack form.
func (g *Grid) MarshalBinary() (out []byte, err error) {
	var bh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&out, &bh)
	err = enc.Encode(gridRecord{
		Name:     g.Name,
		Labels:   g.Labels,
		Min:      g.Min,
		Max:      g.Max,
		NBins:    g.NBins,
		Periodic: g.Periodic,
		Values:   g.values,
		Derivs:   g.derivs,
	})
	return
}

// UnmarshalBinary decodes a grid produced by MarshalBinary, replacing the
// receiver's contents. Every cell of the decoded grid counts as written once.
func (g *Grid) UnmarshalBinary(in []byte) (err error) {
	var (
		bh  codec.MsgpackHandle
		rec gridRecord
		ng  *Grid
	)
	dec := codec.NewDecoderBytes(in, &bh)
	if err = dec.Decode(&rec); err != nil {
		return
	}
	if ng, err = NewGrid(rec.Name, rec.Labels, rec.Min, rec.Max, rec.NBins, rec.Periodic); err != nil {
		return
	}
	if len(rec.Values) != rec.NBins || len(rec.Derivs) != rec.NBins {
		return fmt.Errorf("grid %q: %d bins but %d values and %d derivatives",
			rec.Name, rec.NBins, len(rec.Values), len(rec.Derivs))
	}
	for i := range rec.Values {
		if err = ng.SetValueAndDerivatives(i, rec.Values[i], rec.Derivs[i:i+1]); err != nil {
			return
		}
	}
	*g = *ng
	return
}
