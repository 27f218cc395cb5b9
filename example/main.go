// Demo application showing slugfield wired into a gorm-backed blog.
//
// Articles get their slug from the Name attribute through a gorm
// BeforeSave hook. The list page links every article by slug, the
// detail page resolves a slug back to an article and renders its
// markdown description.
//
// Run with:
//
//	go run ./example
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dmitrymomot/slugfield"
	"github.com/dmitrymomot/slugfield/pkg/logger"
	"github.com/dmitrymomot/slugfield/store"
)

type config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	DatabasePath    string        `env:"DATABASE_PATH" envDefault:"file:articles.db?cache=shared"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Article mirrors a typical content model: the slug is derived from
// Name and must stay unique across the table.
type Article struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"size:255;not null"`
	Description string
	Slug        string `gorm:"size:255;uniqueIndex"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// articleSlug is shared by the gorm hook below; assigned once in main
// before the server starts serving requests.
var articleSlug *slugfield.Field

// BeforeSave derives the slug on insert and keeps it stable on update.
func (a *Article) BeforeSave(tx *gorm.DB) error {
	return articleSlug.BeforeSave(tx.Statement.Context, a, a.ID == 0)
}

func main() {
	log := logger.New()
	if err := run(context.Background(), log); err != nil {
		log.Error("application failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&Article{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	slugStore, err := store.NewGorm(db, &Article{})
	if err != nil {
		return fmt.Errorf("slug store: %w", err)
	}

	articleSlug, err = slugfield.New("Slug", slugfield.Config{
		SourceField:   "Name",
		SymbolMapping: slugfield.DefaultMapping(),
		Unique:        true,
	}, slugfield.StructAccessor{}, slugStore)
	if err != nil {
		return fmt.Errorf("slug field: %w", err)
	}

	// Surface configuration mistakes at startup rather than at save time.
	schema := slugfield.MapSchema{
		"Name":        slugfield.KindText,
		"Description": slugfield.KindText,
		"Slug":        slugfield.KindText,
		"CreatedAt":   slugfield.KindTime,
		"UpdatedAt":   slugfield.KindTime,
	}
	for _, d := range articleSlug.Check(schema) {
		if d.Severity == slugfield.SeverityError {
			return fmt.Errorf("slug field check %s: %s", d.Code, d.Message)
		}
		log.Warn("slug field check", slog.String("code", d.Code), slog.String("message", d.Message))
	}

	h := &handlers{db: db, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", h.list)
	r.Post("/articles", h.create)
	r.Get("/articles/{slug}", h.detail)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type handlers struct {
	db  *gorm.DB
	log *slog.Logger
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	var articles []Article
	if err := h.db.WithContext(r.Context()).Order("created_at DESC").Find(&articles).Error; err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, listTmpl, articles)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	article := Article{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
	}
	if article.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if err := h.db.WithContext(r.Context()).Create(&article).Error; err != nil {
		h.fail(w, err)
		return
	}
	http.Redirect(w, r, "/articles/"+article.Slug, http.StatusSeeOther)
}

func (h *handlers) detail(w http.ResponseWriter, r *http.Request) {
	var article Article
	err := h.db.WithContext(r.Context()).
		Where("slug = ?", chi.URLParam(r, "slug")).
		First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.fail(w, err)
		return
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(article.Description), &buf); err != nil {
		h.fail(w, err)
		return
	}
	body := bluemonday.UGCPolicy().SanitizeBytes(buf.Bytes())

	h.render(w, detailTmpl, struct {
		Article Article
		Body    template.HTML
	}{Article: article, Body: template.HTML(body)})
}

func (h *handlers) render(w http.ResponseWriter, t *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		h.log.Error("render template", slog.Any("error", err))
	}
}

func (h *handlers) fail(w http.ResponseWriter, err error) {
	h.log.Error("request failed", slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

var listTmpl = template.Must(template.New("list").Parse(`<!DOCTYPE html>
<html>
<head><title>Articles</title></head>
<body>
<h1>Articles</h1>
<ul>
{{range .}}<li><a href="/articles/{{.Slug}}">{{.Name}}</a></li>
{{else}}<li>No articles yet.</li>
{{end}}</ul>
<h2>New article</h2>
<form method="post" action="/articles">
<p><input name="name" placeholder="Name"></p>
<p><textarea name="description" placeholder="Markdown description"></textarea></p>
<p><button type="submit">Create</button></p>
</form>
</body>
</html>`))

var detailTmpl = template.Must(template.New("detail").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Article.Name}}</title></head>
<body>
<p><a href="/">&larr; All articles</a></p>
<h1>{{.Article.Name}}</h1>
{{.Body}}
</body>
</html>`))
