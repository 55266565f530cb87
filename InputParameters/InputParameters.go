package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type WaveletParameters struct {
	Title    string `yaml:"Title"`
	Order    int    `yaml:"Order"`
	GridSize int    `yaml:"GridSize"`
	Wavelet  bool   `yaml:"Wavelet"` // Tabulate psi instead of phi
	Output   string `yaml:"Output"`  // Empty writes to stdout
	Format   string `yaml:"Format"`  // "text" or "msgpack"
}

func (wp *WaveletParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, wp)
}

func (wp *WaveletParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", wp.Title)
	fmt.Printf("[%d]\t\t\t\t= Order\n", wp.Order)
	fmt.Printf("[%d]\t\t\t= Requested Grid Size\n", wp.GridSize)
	fmt.Printf("[%v]\t\t\t= Wavelet\n", wp.Wavelet)
	fmt.Printf("[%s]\t\t\t= Output\n", wp.Output)
	fmt.Printf("[%s]\t\t\t= Format\n", wp.Format)
}
