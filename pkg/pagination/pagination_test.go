// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmarchal/filmotheque/pkg/pagination"
)

/*
TestFromRequest verifies query parsing and clamping of page/limit values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/films", 1, 10},
		{"explicit", "/films?page=3&limit=25", 3, 25},
		{"zero_page", "/films?page=0", 1, 10},
		{"negative_page", "/films?page=-4", 1, 10},
		{"limit_over_max", "/films?limit=1000", 1, 10},
		{"garbage_values", "/films?page=abc&limit=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset verifies the SQL offset derivation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 50, pagination.Params{Page: 3, Limit: 25}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 10}.Offset())
}

/*
TestNewMeta verifies page count computation, including empty result sets.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int
		wantPages int
	}{
		{"exact_division", 1, 10, 40, 4},
		{"with_remainder", 1, 10, 42, 5},
		{"empty", 1, 10, 0, 0},
		{"single_item", 1, 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.wantPages, meta.Pages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}
