package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveOn(t *testing.T, target string) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 25, 200)
		return c.SendStatus(fiber.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest("GET", target, nil)); err != nil {
		t.Fatalf("request: %v", err)
	}
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   Paging
	}{
		{"defaults", "/items", Paging{Page: 1, PerPage: 25, Offset: 0, Limit: 25}},
		{"second page", "/items?page=2&per_page=10", Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}},
		{"limit alias", "/items?limit=50", Paging{Page: 1, PerPage: 50, Offset: 0, Limit: 50}},
		{"capped", "/items?per_page=1000", Paging{Page: 1, PerPage: 200, Offset: 0, Limit: 200}},
		{"garbage", "/items?page=abc&per_page=-3", Paging{Page: 1, PerPage: 25, Offset: 0, Limit: 25}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveOn(t, tc.target); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(101, 2, 25)
	if p.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("HasNext/HasPrev = %v/%v, want true/true", p.HasNext, p.HasPrev)
	}

	empty := BuildPaginationFromPage(0, 1, 25)
	if empty.TotalPages != 1 || empty.HasNext || empty.HasPrev {
		t.Errorf("empty pagination = %+v", empty)
	}
}
