package reconcile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gbcatalog/internal/appcontext"
	"github.com/agentstation/gbcatalog/pkg/reconcile"
)

const listing = "hg18\tHuman\tHomo sapiens\tMar. 2006\thuman\n" +
	"hg19\tHuman\tHomo sapiens\tFeb. 2009\thuman\n" +
	"panTro2\tChimp\tPan troglodytes\tOct. 2010\tchimp\n" +
	"mm9\tMouse\tMus musculus\tJul. 2007\tmouse\n"

func run(t *testing.T, app appcontext.Interface, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func withFormat(format string) *appcontext.Mock {
	return &appcontext.Mock{OutputFormatFunc: func() string { return format }}
}

func TestReconcileCommand(t *testing.T) {
	out, err := run(t, withFormat("tsv"), listing)
	require.NoError(t, err)
	assert.Equal(t,
		"hg19\tHuman\tHomo sapiens\tFeb. 2009\thuman\n"+
			"panTro2\tChimp\tPan troglodytes\tOct. 2010\tchimp\n"+
			"mm9\tMouse\tMus musculus\tJul. 2007\tmouse\n", out)
}

func TestReconcileCommandSharedIDs(t *testing.T) {
	input := "hg19\ta\tb\tc\thuman\nhg20\ta\tb\tc\thuman\nhg19\ta\tb\tc\tprimate\n"

	out, err := run(t, withFormat("tsv"), input)
	require.NoError(t, err)
	assert.Equal(t, input, out)

	out, err = run(t, withFormat("tsv"), input, "--strict-pairs")
	require.NoError(t, err)
	assert.Equal(t, "hg20\ta\tb\tc\thuman\nhg19\ta\tb\tc\tprimate\n", out)
}

func TestReconcileCommandUsesAppReconciler(t *testing.T) {
	input := "hg19\ta\tb\tc\thuman\nhg20\ta\tb\tc\thuman\nhg19\ta\tb\tc\tprimate\n"
	app := withFormat("tsv")
	app.ReconcilerFunc = func() *reconcile.Reconciler {
		return reconcile.New(reconcile.WithMatchMode(reconcile.MatchByPair))
	}

	out, err := run(t, app, input)
	require.NoError(t, err)
	assert.Equal(t, "hg20\ta\tb\tc\thuman\nhg19\ta\tb\tc\tprimate\n", out)
}

func TestReconcileCommandDropped(t *testing.T) {
	out, err := run(t, withFormat("tsv"), listing, "--dropped")
	require.NoError(t, err)
	assert.Equal(t, "hg18\tHuman\tHomo sapiens\tMar. 2006\thuman\n", out)
}

func TestReconcileCommandFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "euks.txt"), []byte(listing+"bad line\n"), 0o644))
	app := withFormat("json")
	app.SourceDirFunc = func() string { return dir }

	out, err := run(t, app, "", "euks.txt")
	require.NoError(t, err)
	assert.Contains(t, out, `"versioned_id": "hg19"`)
	assert.Contains(t, out, `"skipped": 1`)
}

func TestReconcileCommandTable(t *testing.T) {
	out, err := run(t, withFormat("table"), listing)
	require.NoError(t, err)
	assert.Contains(t, out, "hg19")
	assert.Contains(t, out, "19")
	assert.NotContains(t, out, "Mar. 2006")
}
