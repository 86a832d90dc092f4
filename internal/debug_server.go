package internal

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const DefaultInspectPrefix = "snapshot:"

var inspectTemplate = template.Must(template.New("inspect").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Badger inspector</title></head>
<body>
<h1>Prefix: {{.Prefix}}</h1>
{{if .Stats}}<ul>{{range $k, $v := .Stats}}<li>{{$k}}: {{$v}}</li>{{end}}</ul>{{end}}
<table>
<tr><th>Key</th><th>Kind</th><th>Size</th><th>Detail</th></tr>
{{range .Items}}<tr><td>{{.Key}}</td><td>{{.Kind}}</td><td>{{.Size}}</td><td>{{.Detail}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type InspectRow struct {
	Key    string
	Kind   string
	Size   string
	Detail string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// NewDebugHandler renders every badger entry under ?prefix= as an HTML table.
func NewDebugHandler(db *badger.DB, endpoint string, mapper RowMapper, statsProvider StatsProvider) http.Handler {
	if mapper == nil {
		mapper = DefaultMapper
	}
	mux := http.NewServeMux()
	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = DefaultInspectPrefix
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		err := db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				if err := item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = inspectTemplate.Execute(w, data)
	})
	return mux
}

// StartDebugServer serves the inspector in the background. The caller owns
// the returned server and shuts it down.
func StartDebugServer(log *slog.Logger, db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider) *http.Server {
	server := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", port),
		Handler: NewDebugHandler(db, endpoint, mapper, statsProvider),
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("Debug inspector stopped", "error", err)
		}
	}()
	return server
}

func DefaultMapper(key string, val []byte) InspectRow {
	kind := "raw"
	if parts := strings.SplitN(key, ":", 2); len(parts) == 2 {
		kind = parts[1]
	}
	return InspectRow{
		Key:    key,
		Kind:   kind,
		Size:   strconv.Itoa(len(val)) + " bytes",
		Detail: "-",
	}
}
