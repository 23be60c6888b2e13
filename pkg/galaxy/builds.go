package galaxy

import (
	"context"

	"github.com/glorpus-work/gogalaxy/pkg/document"
	"github.com/glorpus-work/gogalaxy/pkg/errors"
	"github.com/hashicorp/go-version"
)

// BuildsDocument returns the raw build listing of a product.
func (c *Client) BuildsDocument(ctx context.Context, productID, platform string, generation int) document.Document {
	return c.document(ctx, c.endpoints.buildsURL(productID, platform, generation), false)
}

// ProductBuilds lists the builds of a product for one platform, newest first
// as upstream orders them.
func (c *Client) ProductBuilds(ctx context.Context, productID, platform string, generation int) []Build {
	return ParseBuilds(c.BuildsDocument(ctx, productID, platform, generation))
}

// ParseBuilds reads the "items" list of a build listing.
func ParseBuilds(doc document.Document) []Build {
	items := doc.Get("items").Array()
	builds := make([]Build, 0, len(items))
	for _, item := range items {
		builds = append(builds, Build{
			ID:            item.Get("build_id").String(),
			ProductID:     item.Get("product_id").String(),
			OS:            item.Get("os").String(),
			Branch:        item.Get("branch").String(),
			VersionName:   item.Get("version_name").String(),
			Generation:    int(item.Get("generation").Int()),
			Public:        item.Get("public").Bool(),
			DatePublished: item.Get("date_published").String(),
			Link:          item.Get("link").String(),
		})
	}
	return builds
}

// SelectBuild picks a build by id, or else the first build whose version
// name satisfies constraint. An empty id and constraint select the first
// build. Version names that do not parse never satisfy a constraint.
func SelectBuild(builds []Build, buildID, constraint string) (Build, error) {
	if buildID != "" {
		for _, b := range builds {
			if b.ID == buildID {
				return b, nil
			}
		}
		return Build{}, errors.Wrapf(errors.ErrBuildNotFound, "build %s", buildID)
	}

	if constraint == "" {
		if len(builds) == 0 {
			return Build{}, errors.ErrBuildNotFound
		}
		return builds[0], nil
	}

	constraints, err := version.NewConstraint(constraint)
	if err != nil {
		return Build{}, errors.InvalidValue(errors.ErrInvalidVersionConstraint, constraint)
	}
	for _, b := range builds {
		v, err := version.NewVersion(b.VersionName)
		if err != nil {
			continue
		}
		if constraints.Check(v) {
			return b, nil
		}
	}
	return Build{}, errors.Wrapf(errors.ErrBuildNotFound, "version %s", constraint)
}
