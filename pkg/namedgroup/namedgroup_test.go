package namedgroup

import "testing"

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOK    bool
		wantMatch Match
	}{
		{"empty string", "", false, Match{}},
		{"plain path", "/wp/v2/posts", false, Match{}},
		{"unnamed group", "/posts/([\\d]+)", false, Match{}},
		{"unbalanced opener", "/posts/(?P<id>[\\d]+", false, Match{}},
		{
			"python style",
			"/posts/(?P<id>[\\d]+)",
			true,
			Match{Text: "(?P<id>[\\d]+)", Name: "id", Expr: "[\\d]+", Offset: 7},
		},
		{
			"angle style",
			"(?<slug>[a-z-]+)/edit",
			true,
			Match{Text: "(?<slug>[a-z-]+)", Name: "slug", Expr: "[a-z-]+", Offset: 0},
		},
		{
			"quote style",
			"/a/(?'key'\\w+)",
			true,
			Match{Text: "(?'key'\\w+)", Name: "key", Expr: "\\w+", Offset: 3},
		},
		{
			"group containing slashes",
			"/some/path/(?P<with_named_groups>a/b)/etc",
			true,
			Match{Text: "(?P<with_named_groups>a/b)", Name: "with_named_groups", Expr: "a/b", Offset: 11},
		},
		{
			"one nested group",
			"/themes/(?P<stylesheet>(theme|child))/x",
			true,
			Match{Text: "(?P<stylesheet>(theme|child))", Name: "stylesheet", Expr: "(theme|child)", Offset: 8},
		},
		{
			"first of two groups",
			"/(?P<a>x)/(?P<b>y)",
			true,
			Match{Text: "(?P<a>x)", Name: "a", Expr: "x", Offset: 1},
		},
		{
			"optional tail",
			"/(?P<p>a(?:/b)?)",
			true,
			Match{Text: "(?P<p>a(?:/b)?)", Name: "p", Expr: "a(?:/b)?", Offset: 1},
		},
		{
			"empty body",
			"/(?P<a>)",
			true,
			Match{Text: "(?P<a>)", Name: "a", Expr: "", Offset: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Find(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.wantMatch {
				t.Errorf("Find(%q) = %+v, want %+v", tt.input, got, tt.wantMatch)
			}
			if ok && tt.input[got.Offset:got.Offset+len(got.Text)] != got.Text {
				t.Errorf("Find(%q) offset %d does not point at %q", tt.input, got.Offset, got.Text)
			}
		})
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"posts", false},
		{"(?P<x>y)", true},
		{"(?P<id>[\\d]+)", true},
		{"/(?P<x>y)", false},
		{"(?P<x>y)/", false},
		{"(?P<x>a/b)", true},
	}

	for _, tt := range tests {
		if got := Is(tt.input); got != tt.want {
			t.Errorf("Is(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains("/a/(?P<x>y)/b") {
		t.Error("Contains should find an embedded group")
	}
	if Contains("/a/b") {
		t.Error("Contains should not match a plain path")
	}
}
