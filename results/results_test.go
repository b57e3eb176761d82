package results_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/stencilkit/results"
	"github.com/stretchr/testify/require"
)

// fixed returns deterministic hostname and clock options.
func fixed(host string, at time.Time) []results.SaveOption {
	return []results.SaveOption{
		results.WithHostname(func() (string, error) { return host, nil }),
		results.WithClock(func() time.Time { return at }),
	}
}

// TestSaveWritesRows checks header, formatting and append semantics.
func TestSaveWritesRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	at := time.Date(2026, 10, 19, 9, 12, 44, 120331000, time.UTC)

	require.NoError(t, results.Save(path, "", nil, results.WithOverwrite(), results.WithHeader()))
	opts := fixed("node-07", at)
	require.NoError(t, results.Save(path, "stencil-go", &results.Timing{Average: 0.0421, Stdev: 0.0013}, opts...))
	require.NoError(t, results.Save(path, "stencil-ref", &results.Timing{Average: 1.5, Stdev: 0}, opts...))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "timestamp,hostname,test,timeit_avg,timeit_std\n" +
		"2026-10-19 09:12:44.120331,node-07,stencil-go,4.21e-02,1.30e-03\n" +
		"2026-10-19 09:12:44.120331,node-07,stencil-ref,1.50e+00,0.00e+00\n"
	require.Equal(t, want, string(raw))

	// overwrite without header leaves a single data row
	require.NoError(t, results.Save(path, "only", &results.Timing{Average: 2}, append(opts, results.WithOverwrite())...))
	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(raw), "\n"))
}

// TestSaveRejectsEmptyName keeps rows attributable.
func TestSaveRejectsEmptyName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.csv")
	err := results.Save(path, "", &results.Timing{Average: 1})
	require.ErrorIs(t, err, results.ErrInvalidArgument)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

// TestReadFilters covers test and host filtering plus the array views.
func TestReadFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, results.Save(path, "", nil, results.WithHeader()))
	for _, row := range []struct {
		host, test string
		avg        float64
	}{
		{"a", "t1", 1}, {"b", "t1", 2}, {"a", "t2", 3}, {"b", "t3", 4},
	} {
		require.NoError(t, results.Save(path, row.test, &results.Timing{Average: row.avg, Stdev: row.avg / 10}, fixed(row.host, at)...))
	}

	recs, err := results.Read(path, results.Query{Tests: []string{"t1"}})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, results.Averages(recs))
	require.True(t, at.Equal(recs[0].Timestamp))

	recs, err = results.Read(path, results.Query{Tests: []string{"t1", "t2"}, Hosts: []string{"a"}})
	require.NoError(t, err)
	require.Equal(t, [][2]float64{{1, 0.1}, {3, 0.3}}, results.AveragesWithStd(recs))

	recs, err = results.Read(path, results.Query{Tests: []string{"t3"}})
	require.NoError(t, err)
	v, ok := results.Scalar(recs)
	require.True(t, ok)
	require.Equal(t, 4.0, v)

	recs, err = results.Read(path, results.Query{Tests: []string{"missing"}})
	require.NoError(t, err)
	_, ok = results.Scalar(recs)
	require.False(t, ok)
	require.Empty(t, recs)

	all, err := results.Read(path, results.Query{})
	require.NoError(t, err)
	require.Len(t, all, 4)
}

// TestParseErrors covers missing columns and malformed values.
func TestParseErrors(t *testing.T) {
	_, err := results.Parse(strings.NewReader("timestamp,hostname,test,timeit_avg\n"), results.Query{})
	require.ErrorIs(t, err, results.ErrMissingColumn)

	_, err = results.Parse(strings.NewReader(""), results.Query{})
	require.ErrorIs(t, err, results.ErrMissingColumn)

	bad := "timestamp,hostname,test,timeit_avg,timeit_std\n2026-01-01 00:00:00,h,t,abc,1e-3\n"
	_, err = results.Parse(strings.NewReader(bad), results.Query{})
	require.ErrorIs(t, err, results.ErrMalformedRow)
	require.Contains(t, err.Error(), "line 2")

	// column order is taken from the header; extra columns are ignored
	ok := "test,extra,timeit_std,timeit_avg,hostname,timestamp\nt,x,1e-3,2e-2,h,2026-01-01 00:00:00\n"
	recs, err := results.Parse(strings.NewReader(ok), results.Query{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, 0.02, recs[0].Average)
}

// TestCompare pins every formatting branch.
func TestCompare(t *testing.T) {
	cases := []struct {
		a, b float64
		mode results.CompareMode
		want string
	}{
		{0, 5, results.Faster, "∞"},
		{1, 3.44, results.Faster, "~3.4"},
		{1, 10, results.Faster, "~10.0"},
		{1, 42.4, results.Faster, "~42"},
		{2, 3, results.FasterPercent, "~50%"},
		{0, 3, results.FasterPercent, "∞"},
		{3, 3, results.FasterPercent, "~0%"},
	}
	for _, tc := range cases {
		got, err := results.Compare(tc.a, tc.b, tc.mode)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "a=%g b=%g mode=%s", tc.a, tc.b, tc.mode)
	}

	_, err := results.Compare(4, 3, results.FasterPercent)
	require.ErrorIs(t, err, results.ErrInvalidArgument)
	_, err = results.Compare(1, 2, results.CompareMode(7))
	require.ErrorIs(t, err, results.ErrInvalidArgument)

	m, err := results.ParseCompareMode("faster-%")
	require.NoError(t, err)
	require.Equal(t, results.FasterPercent, m)
	_, err = results.ParseCompareMode("slower")
	require.ErrorIs(t, err, results.ErrInvalidArgument)
}
