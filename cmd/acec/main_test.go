// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"

	"github.com/go-air/acec/aig/aiger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func genFile(t *testing.T, name string, args ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	_, err := run(t, append([]string{"gen"}, append(args, "-o", p)...)...)
	require.NoError(t, err)
	return p
}

func TestGen(t *testing.T) {
	out, err := run(t, "gen", "adder", "4")
	require.NoError(t, err)
	a, err := aiger.ReadAscii(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, a.Inputs(), 8)
	require.Len(t, a.Outputs(), 5)

	out, err = run(t, "gen", "mult", "3", "--binary")
	require.NoError(t, err)
	a, err = aiger.Read(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, a.Inputs(), 6)
	require.Len(t, a.Outputs(), 6)

	_, err = run(t, "gen", "adder", "x")
	require.Error(t, err)
	_, err = run(t, "gen", "divider", "3")
	require.Error(t, err)
}

func TestBoxText(t *testing.T) {
	p := genFile(t, "add4.aag", "adder", "4")
	out, err := run(t, "box", p)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, p+":\nbox: 4 ranks"), out)
	require.Contains(t, out, "rank   3:")
}

func TestBoxYAML(t *testing.T) {
	p4 := genFile(t, "add4.aag", "adder", "4")
	p8 := genFile(t, "add8.aig", "adder", "8", "--cin", "--binary")
	out, err := run(t, "box", p4, p8, "--jobs", "2", "--format", "yaml")
	require.NoError(t, err)
	var got []struct {
		File string `yaml:"file"`
		Box  struct {
			Fingerprint string `yaml:"fingerprint"`
			Ranks       []struct {
				Rank int `yaml:"rank"`
			} `yaml:"ranks"`
		} `yaml:"box"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	require.Equal(t, p4, got[0].File)
	require.Len(t, got[0].Box.Ranks, 4)
	require.Equal(t, p8, got[1].File)
	require.Len(t, got[1].Box.Ranks, 8)
	require.Len(t, got[1].Box.Fingerprint, 64)
}

func TestBoxGzip(t *testing.T) {
	out, err := run(t, "gen", "adder", "3")
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "add3.aag.gz")
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write([]byte(out))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o644))

	out, err = run(t, "box", p)
	require.NoError(t, err)
	require.Contains(t, out, "box: 3 ranks")
}

func TestBoxSymlink(t *testing.T) {
	out, err := run(t, "gen", "adder", "3")
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "data"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "links"), 0o755))
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write([]byte(out))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "add3.aag.gz"), buf.Bytes(), 0o644))
	link := filepath.Join(dir, "links", "add3")
	require.NoError(t, os.Symlink(filepath.Join("..", "data", "add3.aag.gz"), link))

	out, err = run(t, "box", link)
	require.NoError(t, err)
	require.Contains(t, out, "box: 3 ranks")
}

func TestBoxMissing(t *testing.T) {
	_, err := run(t, "box", filepath.Join(t.TempDir(), "none.aag"))
	require.Error(t, err)
	_, err = run(t, "box")
	require.Error(t, err)
}

func TestCec(t *testing.T) {
	asc := genFile(t, "add6.aag", "adder", "6")
	bin := genFile(t, "add6.aig", "adder", "6", "--binary")
	out, err := run(t, "cec", asc, bin, "--miter")
	require.NoError(t, err)
	require.Contains(t, out, "boxes equivalent")
	require.Contains(t, out, "outputs equivalent")

	out, err = run(t, "cec", asc, asc)
	require.NoError(t, err)
	require.NotContains(t, out, "outputs equivalent")
}

func TestCecDiffer(t *testing.T) {
	add := genFile(t, "add2.aag", "adder", "2")
	mul := genFile(t, "mul2.aag", "mult", "2")
	_, err := run(t, "cec", add, mul)
	require.True(t, errors.Is(err, errBoxesDiffer), "%v", err)
}

func TestMetricsOut(t *testing.T) {
	p := genFile(t, "add4.aag", "adder", "4")
	m := filepath.Join(t.TempDir(), "metrics.prom")
	_, err := run(t, "box", p, "--metrics-out", m)
	require.NoError(t, err)
	f, err := os.Open(m)
	require.NoError(t, err)
	defer f.Close()
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(f)
	require.NoError(t, err)
	require.Equal(t, 1.0, value(t, mfs["acec_box_boxes_total"]))
	adders := map[string]float64{}
	for _, m := range mfs["acec_box_adders_total"].GetMetric() {
		adders[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	require.Equal(t, map[string]float64{"full": 3, "half": 1}, adders)
	ft := mfs["acec_cli_file_duration_seconds"]
	require.NotNil(t, ft)
	require.Equal(t, dto.MetricType_HISTOGRAM, ft.GetType())
	require.Equal(t, uint64(1), ft.GetMetric()[0].GetHistogram().GetSampleCount())
}

func value(t *testing.T, mf *dto.MetricFamily) float64 {
	t.Helper()
	require.NotNil(t, mf)
	require.Len(t, mf.GetMetric(), 1)
	return mf.GetMetric()[0].GetCounter().GetValue()
}

func TestConfigFile(t *testing.T) {
	p := genFile(t, "add4.aag", "adder", "4")
	dir := t.TempDir()
	cfg := filepath.Join(dir, "acec.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: yaml\njobs: 1\n"), 0o644))
	out, err := run(t, "box", p, "--config", cfg)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "- file: "), out)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colour: blue\n"), 0o644))
	_, err = run(t, "box", p, "--config", bad)
	require.Error(t, err)

	_, err = run(t, "box", p, "--format", "xml")
	require.Error(t, err)
}
