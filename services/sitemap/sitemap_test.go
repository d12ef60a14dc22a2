package sitemap

import (
	"strings"
	"testing"
)

func TestStaticPaths(t *testing.T) {
	paths := StaticPaths()
	if len(paths) == 0 {
		t.Fatal("expected static paths")
	}
	if paths[0] != "/" {
		t.Errorf("first path: got %q, want %q", paths[0], "/")
	}
	for _, p := range paths {
		if !strings.HasPrefix(p, "/") {
			t.Errorf("path %q must start with /", p)
		}
	}
}

func TestRobotsTxt(t *testing.T) {
	robots := RobotsTxt("https://www.globaledge.education")

	for _, want := range []string{
		"User-agent: *",
		"Disallow: /api/",
		"Disallow: /admin/",
		"Sitemap: https://www.globaledge.education/sitemap.xml",
	} {
		if !strings.Contains(robots, want) {
			t.Errorf("robots.txt missing %q:\n%s", want, robots)
		}
	}
}
