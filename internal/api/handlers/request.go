package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

var (
	// ErrEmptyBody возвращается, если тело запроса пустое
	ErrEmptyBody = errors.New("request body is empty")

	// ErrInvalidQueryParam возвращается при некорректном query параметре
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)

// DecodeJSON читает тело запроса в dst; неизвестные поля игнорируются
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// Pagination параметры страницы из query (page, page_size)
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination читает page и page_size; отсутствующие значения равны 0
// Ограничение размера страницы выполняет domain.NewPage
func ParsePagination(r *http.Request) (Pagination, error) {
	var p Pagination
	var err error

	if p.Page, err = queryInt(r, "page"); err != nil {
		return Pagination{}, err
	}
	if p.PageSize, err = queryInt(r, "page_size"); err != nil {
		return Pagination{}, err
	}
	return p, nil
}

// QueryString возвращает непустой query параметр или nil
func QueryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

// QueryBool читает флаг вида true/false/1/0; отсутствие параметра дает nil
func QueryBool(r *http.Request, name string) (*bool, error) {
	v := QueryString(r, name)
	if v == nil {
		return nil, nil
	}

	b, err := strconv.ParseBool(strings.ToLower(*v))
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, *v)
	}
	return &b, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	v := QueryString(r, name)
	if v == nil {
		return 0, nil
	}

	n, err := strconv.Atoi(*v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, *v)
	}
	return n, nil
}
