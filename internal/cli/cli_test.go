package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/stattools/errs"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(s), &m))
	return m
}

func TestTTestCommand(t *testing.T) {
	out, _, err := run(t, "", "ttest", "--a", "2,1,3,4", "--b", "6,5,7,9")
	require.NoError(t, err)

	m := decode(t, out)
	assert.InDelta(t, -3.9703, m["statistic"], 1e-4)
	assert.InDelta(t, 0.00736, m["p_value"], 1e-4)
	assert.Equal(t, 6, m["dof"])
}

func TestTTestCommandText(t *testing.T) {
	out, _, err := run(t, "", "ttest", "-o", "text", "--a", "2,1,3,4", "--b", "6,5,7,9")
	require.NoError(t, err)
	assert.Contains(t, out, "statistic  -3.97034")
	assert.Contains(t, out, "dof        6")
}

func TestChiSquareCommand(t *testing.T) {
	args := []string{"chisq", "--observed", "10,20,30", "--expected", "15,15,30", "--seed", "3", "--trials", "2000"}

	first, _, err := run(t, "", args...)
	require.NoError(t, err)
	second, _, err := run(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	m := decode(t, first)
	assert.Equal(t, "monte-carlo", m["method"])
	assert.Equal(t, 2000, m["trials"])

	out, _, err := run(t, "", "chisq", "--observed", "10,20,30", "--expected", "15,15,30", "--analytic")
	require.NoError(t, err)
	m = decode(t, out)
	assert.Equal(t, "analytic", m["method"])
	assert.InDelta(t, 0.1889, m["p_value"], 1e-3)
}

func TestANOVACommand(t *testing.T) {
	out, _, err := run(t, "", "anova",
		"--group", "20,21,22,23,24",
		"--group", "28,29,30,31,32",
		"--group", "33,34,35,36,37",
	)
	require.NoError(t, err)

	m := decode(t, out)
	assert.InDelta(t, 86.0, m["statistic"], 1e-9)
	assert.Equal(t, 2, m["dof_between"])

	_, _, err = run(t, "", "anova", "--group", "1,2,x")
	assert.Error(t, err)

	_, _, err = run(t, "", "anova", "--group", "1,2,3")
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)
}

func TestPearsonCommand(t *testing.T) {
	out, _, err := run(t, "", "pearson", "--x", "1,2,3,4", "--y", "2,4,6,8")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, decode(t, out)["r"], 1e-12)

	out, _, err = run(t, "", "pearson", "--x", "1,2,3,4", "--y", "2,4,6,8", "--mixed-divisor")
	require.NoError(t, err)
	m := decode(t, out)
	assert.InDelta(t, 0.75, m["r"], 1e-12)
	assert.Equal(t, true, m["mixed_divisor"])
}

func TestClassifyCommandSynthetic(t *testing.T) {
	out, _, err := run(t, "", "classify", "--samples", "200", "--features", "4", "--seed", "42")
	require.NoError(t, err)

	var result struct {
		Source    string `yaml:"source"`
		TrainSize int    `yaml:"train_size"`
		TestSize  int    `yaml:"test_size"`
		Model     struct {
			Weights []float64 `yaml:"weights"`
		} `yaml:"model"`
		Metrics struct {
			Accuracy float64 `yaml:"accuracy"`
		} `yaml:"metrics"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, "synthetic", result.Source)
	assert.Equal(t, 160, result.TrainSize)
	assert.Equal(t, 40, result.TestSize)
	assert.Len(t, result.Model.Weights, 4)
	assert.GreaterOrEqual(t, result.Metrics.Accuracy, 0.7)
}

func TestClassifyCommandCSV(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("x,region,label\n")
	for i := 0; i < 40; i++ {
		region := "north"
		if i%3 == 0 {
			region = "south"
		}
		x := "NA"
		if i%7 != 0 {
			x = strconv.Itoa(i - 20)
		}
		label := "0"
		if i >= 20 {
			label = "1"
		}
		sb.WriteString(x + "," + region + "," + label + "\n")
	}

	out, _, err := run(t, sb.String(), "classify", "--label", "label", "--impute", "mean")
	require.NoError(t, err)

	m := decode(t, out)
	assert.Equal(t, "stdin", m["source"])
	assert.Equal(t, []any{"x", "region_north", "region_south"}, m["features"])

	_, _, err = run(t, sb.String(), "classify", "--label", "missing")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestSummaryCommand(t *testing.T) {
	csv := "A,B,C\n1,5,x\n2,4,y\n3,3,x\n4,2,y\n5,1,x\n"

	out, _, err := run(t, csv, "summary", "--corr")
	require.NoError(t, err)

	var result struct {
		Summary []struct {
			Column string  `yaml:"column"`
			Mean   float64 `yaml:"mean"`
			Mode   float64 `yaml:"mode"`
		} `yaml:"summary"`
		Correlations map[string]map[string]float64 `yaml:"correlations"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	require.Len(t, result.Summary, 2)
	assert.Equal(t, "A", result.Summary[0].Column)
	assert.Equal(t, 3.0, result.Summary[0].Mean)
	assert.Equal(t, 1.0, result.Summary[1].Mode)
	assert.InDelta(t, -1.0, result.Correlations["A"]["B"], 1e-12)
}

func TestTransformCommand(t *testing.T) {
	csv := "age,income,region\n1,0,north\n2,9,south\n3,99,north\n4,999,east\n"

	out, _, err := run(t, csv, "transform",
		"--log1p", "income",
		"--bin", "age", "--bins", "2", "--labels", "young,old",
		"--encode", "region,age_binned", "--method", "label",
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "age,income,region,age_binned", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,0,1,1"), lines[1])
	assert.True(t, strings.HasPrefix(lines[4], "4,6.90"), lines[4])
	assert.True(t, strings.HasSuffix(lines[4], ",0,0"), lines[4])
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stattools.yaml")

	out, _, err := run(t, "", "config", "save", "--config", path, "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved config")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "seed: 9")

	out, _, err = run(t, "", "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 9, decode(t, out)["seed"])
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "", "classify", "--samples", "50", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "model fitted")

	_, stderr, err = run(t, "", "classify", "--samples", "50")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("STATTOOLS_OUTPUT", "text")
	out, _, err := run(t, "", "pearson", "--x", "1,2,3", "--y", "3,2,1")
	require.NoError(t, err)
	assert.Contains(t, out, "r  -1")
}

func TestInvalidOutput(t *testing.T) {
	_, _, err := run(t, "", "ttest", "-o", "json", "--a", "1,2", "--b", "3,4")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}
