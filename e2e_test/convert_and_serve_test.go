//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/rsxml/arrangement"
	"github.com/jsphweid/rsxml/catalog"
	"github.com/jsphweid/rsxml/cmd"
	"github.com/jsphweid/rsxml/model"
	"github.com/jsphweid/rsxml/util"
	"github.com/jsphweid/rsxml/xmlio"
	"github.com/stretchr/testify/assert"
)

var paths []string

func TestMain(m *testing.M) {
	for _, dir := range []string{"../arrangement/testdata", "../catalog/testdata"} {
		found, err := util.GatherAllXmlPaths(dir, 0)
		if err != nil {
			panic(err.Error())
		}
		paths = append(paths, found...)
	}

	exitVal := m.Run()

	os.Exit(exitVal)
}

func TestCatalogScanE2E(t *testing.T) {
	entries := catalog.Scan(paths, nil)

	assert := assert.New(t)
	assert.Len(entries, 2)
	for _, e := range entries {
		assert.NotEmpty(e.Title)
		assert.NotEmpty(e.Tuning)
	}
}

func TestConvertEveryArrangementE2E(t *testing.T) {
	out := t.TempDir()
	for _, entry := range catalog.Scan(paths, nil) {
		t.Run(filepath.Base(entry.Path), func(t *testing.T) {
			assert := assert.New(t)
			arr, err := arrangement.Load(entry.Path)
			assert.NoError(err)

			arr.FixHighDensity()
			assert.NoError(arr.RemoveDD(true))

			dest := filepath.Join(out, filepath.Base(entry.Path))
			assert.NoError(arr.Save(dest, xmlio.Full))

			again, err := arrangement.Load(dest)
			assert.NoError(err)
			assert.Len(again.Levels, 1)
			assert.Equal("END", again.Phrases[len(again.Phrases)-1].Name)
			assert.Equal(entry.Title, *again.MetaData.Title)
		})
	}
}

func TestStoreConvertedDocumentE2E(t *testing.T) {
	data, err := os.ReadFile(paths[0])
	if err != nil {
		panic(err.Error())
	}
	router := cmd.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/documents?removeDD=true&full=true", bytes.NewReader(data))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	assert := assert.New(t)
	assert.Equal(http.StatusCreated, resp.StatusCode)

	var created model.DocumentResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		panic(err.Error())
	}

	req = httptest.NewRequest(http.MethodGet, "/documents/"+created.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp = w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	assert.Equal(http.StatusOK, resp.StatusCode)

	arr, err := arrangement.Read(bytes.NewReader(respBody))
	assert.NoError(err)
	assert.Len(arr.Levels, 1)
}
