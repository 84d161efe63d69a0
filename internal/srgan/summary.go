package srgan

import (
	"github.com/born-ml/srgan/internal/nn"
	"github.com/born-ml/srgan/internal/tensor"
)

// LayerSummary describes one stage of a network.
type LayerSummary struct {
	Name        string
	Layer       string
	OutputShape tensor.Shape // NHWC, batch of one
	Params      int
	Trainable   int
}

// summarize runs a zero batch of one through stages in inference mode and
// records each stage's output shape and parameter counts.
func summarize[B tensor.Backend](component string, stages []stage[B], input tensor.Shape, backend B) (rows []LayerSummary, err error) {
	defer func() {
		if err != nil {
			rows = nil
		}
	}()
	defer recoverShape(component, &err)

	x := tensor.Zeros[float32](input, backend)
	rows = make([]LayerSummary, 0, len(stages))
	for _, s := range stages {
		x = nn.ForwardMode[B](s.module, x, false)
		rows = append(rows, LayerSummary{
			Name:        s.name,
			Layer:       s.desc,
			OutputShape: channelsLast(x.Shape()),
			Params:      nn.CountParameters[B](s.module),
			Trainable:   nn.CountTrainable[B](s.module),
		})
	}
	return rows, nil
}

func channelsLast(shape tensor.Shape) tensor.Shape {
	if len(shape) != 4 {
		return shape.Clone()
	}
	return tensor.Shape{shape[0], shape[2], shape[3], shape[1]}
}

// TotalParams sums the parameter counts of rows.
func TotalParams(rows []LayerSummary) (total, trainable int) {
	for _, r := range rows {
		total += r.Params
		trainable += r.Trainable
	}
	return total, trainable
}
