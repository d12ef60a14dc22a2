package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/globaledge/api/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Builder assembles the public URL list from static routes plus published
// documents. It feeds both the sitemap.xml handler and IndexNow submissions.
type Builder struct {
	db      *mongo.Database
	siteURL string
}

// NewBuilder creates a sitemap builder
func NewBuilder(db *mongo.Database, siteURL string) *Builder {
	return &Builder{db: db, siteURL: siteURL}
}

// URL is a single sitemap entry
type URL struct {
	Loc     string     `xml:"loc"`
	LastMod *time.Time `xml:"-"`
}

type xmlURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

// StaticPaths lists the fixed marketing routes.
func StaticPaths() []string {
	return []string{
		"/",
		"/about",
		"/services",
		"/destinations",
		"/universities",
		"/testimonials",
		"/blog",
		"/contact",
	}
}

// URLs returns every crawlable URL with its last modification time.
func (b *Builder) URLs(ctx context.Context) ([]URL, error) {
	var urls []URL
	for _, p := range StaticPaths() {
		urls = append(urls, URL{Loc: b.siteURL + p})
	}

	dynamic := []struct {
		collection string
		filter     bson.M
		prefix     string
	}{
		{model.Content{}.CollectionName(), bson.M{"is_published": true}, "/blog/"},
		{model.Country{}.CollectionName(), bson.M{"is_active": true}, "/destinations/"},
		{model.University{}.CollectionName(), bson.M{"is_active": true}, "/universities/"},
	}

	for _, d := range dynamic {
		entries, err := b.slugEntries(ctx, d.collection, d.filter, d.prefix)
		if err != nil {
			return nil, err
		}
		urls = append(urls, entries...)
	}

	return urls, nil
}

type slugDoc struct {
	Slug      string    `bson:"slug"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (b *Builder) slugEntries(ctx context.Context, collection string, filter bson.M, prefix string) ([]URL, error) {
	opts := options.Find().SetProjection(bson.M{"slug": 1, "updated_at": 1})
	cur, err := b.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []slugDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	urls := make([]URL, 0, len(docs))
	for _, doc := range docs {
		mod := doc.UpdatedAt
		urls = append(urls, URL{Loc: b.siteURL + prefix + doc.Slug, LastMod: &mod})
	}
	return urls, nil
}

// NewURLsSince returns public URLs for documents created after the cutoff,
// used by the IndexNow submit-new action.
func (b *Builder) NewURLsSince(ctx context.Context, since time.Time) ([]string, error) {
	dynamic := []struct {
		collection string
		filter     bson.M
		prefix     string
	}{
		{model.Content{}.CollectionName(), bson.M{"is_published": true, "created_at": bson.M{"$gte": since}}, "/blog/"},
		{model.Country{}.CollectionName(), bson.M{"is_active": true, "created_at": bson.M{"$gte": since}}, "/destinations/"},
		{model.University{}.CollectionName(), bson.M{"is_active": true, "created_at": bson.M{"$gte": since}}, "/universities/"},
	}

	var urls []string
	for _, d := range dynamic {
		entries, err := b.slugEntries(ctx, d.collection, d.filter, d.prefix)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			urls = append(urls, e.Loc)
		}
	}
	return urls, nil
}

// AllURLs returns every crawlable URL as plain strings.
func (b *Builder) AllURLs(ctx context.Context) ([]string, error) {
	entries, err := b.URLs(ctx)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(entries))
	for _, e := range entries {
		urls = append(urls, e.Loc)
	}
	return urls, nil
}

// XML renders the sitemap document.
func (b *Builder) XML(ctx context.Context) ([]byte, error) {
	entries, err := b.URLs(ctx)
	if err != nil {
		return nil, err
	}

	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range entries {
		u := xmlURL{Loc: e.Loc}
		if e.LastMod != nil {
			u.LastMod = e.LastMod.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// RobotsTxt renders the robots policy: everything public is crawlable,
// the API and admin surfaces are not.
func RobotsTxt(siteURL string) string {
	return fmt.Sprintf(`User-agent: *
Allow: /
Disallow: /api/
Disallow: /admin/

Sitemap: %s/sitemap.xml
`, siteURL)
}
