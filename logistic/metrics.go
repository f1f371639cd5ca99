package logistic

import (
	"github.com/sartorproj/stattools/errs"
)

// Metrics holds binary classification performance measures. Precision,
// recall and F1 are 0 when their denominator is 0.
type Metrics struct {
	Accuracy  float64 `json:"accuracy" yaml:"accuracy"`
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`

	TruePositives  int `json:"tp" yaml:"tp"`
	FalsePositives int `json:"fp" yaml:"fp"`
	TrueNegatives  int `json:"tn" yaml:"tn"`
	FalseNegatives int `json:"fn" yaml:"fn"`
}

// Evaluate compares predicted labels against true labels.
func Evaluate(yTrue []float64, yPred []int) (*Metrics, error) {
	const op = "logistic.Evaluate"

	if len(yTrue) != len(yPred) {
		return nil, errs.Invalid(op, "%d true labels, %d predictions", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return nil, errs.Invalid(op, "no labels")
	}

	m := &Metrics{}
	for i, t := range yTrue {
		p := yPred[i]
		switch {
		case t == 1 && p == 1:
			m.TruePositives++
		case t == 0 && p == 1:
			m.FalsePositives++
		case t == 0 && p == 0:
			m.TrueNegatives++
		case t == 1 && p == 0:
			m.FalseNegatives++
		default:
			return nil, errs.Invalid(op, "sample %d: label %v, prediction %d are not binary", i, t, p)
		}
	}

	m.Accuracy = float64(m.TruePositives+m.TrueNegatives) / float64(len(yTrue))
	m.Precision = ratio(m.TruePositives, m.TruePositives+m.FalsePositives)
	m.Recall = ratio(m.TruePositives, m.TruePositives+m.FalseNegatives)
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m, nil
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
