package galaxy

import (
	"strconv"
	"strings"
)

// Endpoints holds the upstream base URLs. Paths and query strings are
// appended verbatim; identifiers are not escaped.
type Endpoints struct {
	ContentSystem string
	CDN           string
	API           string
	Embed         string
}

// DefaultEndpoints are the production hosts.
var DefaultEndpoints = Endpoints{
	ContentSystem: "https://content-system.gog.com",
	CDN:           "https://cdn.gog.com/content-system",
	API:           "https://api.gog.com",
	Embed:         "https://embed.gog.com",
}

const productExpand = "downloads,expanded_dlcs,description,screenshots,videos,related_products,changelog"

func (e Endpoints) buildsURL(productID, platform string, generation int) string {
	return e.ContentSystem + "/products/" + productID + "/os/" + platform + "/builds?generation=" + strconv.Itoa(generation)
}

func (e Endpoints) manifestV1URL(productID, buildID, manifestID, platform string) string {
	return e.CDN + "/v1/manifests/" + productID + "/" + platform + "/" + buildID + "/" + manifestID + ".json"
}

func (e Endpoints) manifestV2URL(hash string, isDependency bool) string {
	if isDependency {
		return e.CDN + "/v2/dependencies/meta/" + HashToPath(hash)
	}
	return e.CDN + "/v2/meta/" + HashToPath(hash)
}

func (e Endpoints) secureLinkURL(productID, path string) string {
	return e.ContentSystem + "/products/" + productID + "/secure_link?generation=2&path=" + path + "&_version=2"
}

func (e Endpoints) dependencyLinkURL(path string) string {
	return e.ContentSystem + "/open_link?generation=2&_version=2&path=/dependencies/store/" + path
}

func (e Endpoints) productInfoURL(productID string) string {
	return e.API + "/products/" + productID + "?expand=" + productExpand + "&locale=en-US"
}

func (e Endpoints) userDataURL() string {
	return e.Embed + "/userData.json"
}

func (e Endpoints) dependenciesRepositoryURL() string {
	return e.ContentSystem + "/dependencies/repository?generation=2"
}

// HashToPath shards a content hash as "ab/cd/abcdef...". Values that already
// contain a "/" and hashes shorter than four characters are returned unchanged.
func HashToPath(hash string) string {
	if strings.Contains(hash, "/") || len(hash) < 4 {
		return hash
	}
	return hash[:2] + "/" + hash[2:4] + "/" + hash
}
