package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/services"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/storage"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/utils"
)

// bindError marks a failure caused by client input, so the generic handlers
// can answer 400 instead of 500.
type bindError struct{ err error }

func (e bindError) Error() string { return e.err.Error() }
func (e bindError) Unwrap() error { return e.err }

func invalid(err error) error { return bindError{err: err} }

func invalidf(msg string) error { return bindError{err: errors.New(msg)} }

// FileFields resolves file parts of the current request into retrieval URLs
// through the storage gateway. Every upload completes before the record is
// persisted; a failed upload aborts the request with nothing written.
type FileFields struct {
	c     *gin.Context
	store storage.Uploader
}

// URL uploads the file part under field and returns its retrieval URL.
// ok is false when the request carries no file under that name.
func (f *FileFields) URL(field string) (string, bool, error) {
	fh, err := f.c.FormFile(field)
	if err != nil {
		return "", false, nil
	}
	url, err := f.store.Upload(f.c.Request.Context(), fh)
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

// URLs uploads every file part under field, in request order.
func (f *FileFields) URLs(field string) ([]string, error) {
	form, err := f.c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	var urls []string
	for _, fh := range form.File[field] {
		url, err := f.store.Upload(f.c.Request.Context(), fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// Resource is the one generic document-resource controller: list, get,
// create and update over a single model, parameterized by envelope key,
// list scope and a bind hook. Each entity instantiates it once.
type Resource[M any] struct {
	DB    *gorm.DB
	Store storage.Uploader
	Cache *services.ListCache

	// Name keys the success envelope and the list cache ("player").
	Name string
	// Label opens the human-readable messages ("Player").
	Label string
	// Scope applies the entity's list ordering and caps.
	Scope func(*gorm.DB) *gorm.DB
	// Bind maps the request onto the model. On update it receives the
	// stored record and must only overwrite supplied fields.
	Bind func(c *gin.Context, files *FileFields, m *M, update bool) error
}

func (r *Resource[M]) listKey() string { return "list:" + r.Name }

func (r *Resource[M]) List(c *gin.Context) {
	ctx := c.Request.Context()

	var items []M
	if r.Cache.Get(ctx, r.listKey(), &items) {
		c.JSON(http.StatusOK, items)
		return
	}

	q := r.DB
	if r.Scope != nil {
		q = r.Scope(q)
	}
	if err := q.Find(&items).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to fetch "+r.Name+" records", err)
		return
	}
	if items == nil {
		items = []M{}
	}

	r.Cache.Set(ctx, r.listKey(), items)
	c.JSON(http.StatusOK, items)
}

func (r *Resource[M]) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusNotFound, r.Label+" not found", nil)
		return
	}

	item := new(M)
	if err := r.DB.First(item, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, r.Label+" not found", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (r *Resource[M]) Create(c *gin.Context) {
	item := new(M)
	files := &FileFields{c: c, store: r.Store}

	if err := r.Bind(c, files, item, false); err != nil {
		r.bindFail(c, err)
		return
	}

	if err := r.DB.Create(item).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to save "+r.Name, err)
		return
	}

	r.Cache.Invalidate(c.Request.Context(), r.listKey())
	utils.Envelope(c, http.StatusCreated, r.Label+" created successfully", r.Name, item)
}

func (r *Resource[M]) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusNotFound, r.Label+" not found", nil)
		return
	}

	item := new(M)
	if err := r.DB.First(item, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, r.Label+" not found", err)
		return
	}

	files := &FileFields{c: c, store: r.Store}
	if err := r.Bind(c, files, item, true); err != nil {
		r.bindFail(c, err)
		return
	}

	if err := r.DB.Save(item).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to update "+r.Name, err)
		return
	}

	r.Cache.Invalidate(c.Request.Context(), r.listKey())
	utils.Envelope(c, http.StatusOK, r.Label+" updated successfully", r.Name, item)
}

func (r *Resource[M]) bindFail(c *gin.Context, err error) {
	var be bindError
	if errors.As(err, &be) {
		utils.Fail(c, http.StatusBadRequest, "Invalid "+r.Name+" payload", err)
		return
	}
	utils.Fail(c, http.StatusInternalServerError, "File upload failed", err)
}
