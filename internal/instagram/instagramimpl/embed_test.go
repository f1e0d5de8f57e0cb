package instagramimpl

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cdn(key string, size int) string {
	return fmt.Sprintf("https://scontent.cdninstagram.com/v/t51.29350-15/%s?stp=dst-jpg_e35_p%dx%d&_nc_ht=scontent", key, size, size)
}

func resources(key string, widths ...int) string {
	parts := make([]string, 0, len(widths))
	for _, w := range widths {
		parts = append(parts, fmt.Sprintf(`{"src":%q,"config_width":%d,"config_height":%d}`, cdn(key, w), w, w))
	}
	return `"display_resources":[` + strings.Join(parts, ",") + `]`
}

func TestParseEmbedPicksWidestVariant(t *testing.T) {
	page := `<html><script>{"shortcode_media":{` + resources("111_222_333_n.jpg", 150, 320, 1080) +
		`,"owner":{"id":"1","username":"janedoe"}}}</script></html>`

	embed, err := ParseEmbed([]byte(page))
	require.NoError(t, err)

	assert.Equal(t, []string{cdn("111_222_333_n.jpg", 1080)}, embed.Images)
	assert.Equal(t, "janedoe", embed.Username)
	assert.False(t, embed.IsCarousel)
}

func TestParseEmbedWidestIgnoresDeclarationOrder(t *testing.T) {
	page := `<script>` + resources("111_222_333_n.jpg", 1080, 150, 640) + `</script>`

	embed, err := ParseEmbed([]byte(page))
	require.NoError(t, err)
	assert.Equal(t, []string{cdn("111_222_333_n.jpg", 1080)}, embed.Images)
}

func TestParseEmbedCarouselDeduplicatesParent(t *testing.T) {
	// The sidecar parent repeats the first child's resources.
	page := `<script>{"__typename":"GraphSidecar",` +
		resources("1_1_1_n.jpg", 320, 1080) +
		`,"edge_sidecar_to_children":{"edges":[` +
		`{"node":{` + resources("1_1_1_n.jpg", 320, 1080) + `}},` +
		`{"node":{` + resources("2_2_2_n.jpg", 320, 1080) + `}},` +
		`{"node":{` + resources("3_3_3_n.jpg", 320, 1080) + `}}]}}</script>`

	embed, err := ParseEmbed([]byte(page))
	require.NoError(t, err)

	assert.Equal(t, []string{
		cdn("1_1_1_n.jpg", 1080),
		cdn("2_2_2_n.jpg", 1080),
		cdn("3_3_3_n.jpg", 1080),
	}, embed.Images)
	assert.True(t, embed.IsCarousel)
}

func TestParseEmbedEscapedJSON(t *testing.T) {
	blob := resources("9_8_7_n.jpg", 320, 1080)
	escaped := strings.NewReplacer(`"`, `\\\"`, `/`, `\\\/`, `&`, `\\u0026`).Replace(blob)
	page := `<script>requireLazy(["ServerJS"],function(s){s.handle("` + escaped + `")});</script>`

	embed, err := ParseEmbed([]byte(page))
	require.NoError(t, err)
	assert.Equal(t, []string{cdn("9_8_7_n.jpg", 1080)}, embed.Images)
}

func TestParseEmbedSkipsProfilePictures(t *testing.T) {
	profile := `"display_resources":[{"src":"https://scontent.cdninstagram.com/v/t51.2885-19/5_5_5_n.jpg","config_width":150}]`
	page := `<script>` + profile + `,` + resources("6_6_6_n.jpg", 1080) + `</script>`

	embed, err := ParseEmbed([]byte(page))
	require.NoError(t, err)
	assert.Equal(t, []string{cdn("6_6_6_n.jpg", 1080)}, embed.Images)
}

func TestParseEmbedSrcsetFallback(t *testing.T) {
	page := `<html><body>
<div class="Header"><span class="UsernameText">janedoe</span></div>
<img class="EmbeddedMediaImage" src="https://scontent.example/4_4_4_n.jpg?s=320"
     srcset="https://scontent.example/4_4_4_n.jpg?s=640 640w,https://scontent.example/4_4_4_n.jpg?s=1080 1080w,https://scontent.example/4_4_4_n.jpg?s=750 750w">
<div class="Caption"><a class="CaptionUsername" href="/janedoe">janedoe</a> Sunset over the bay with @friend #travel #Sunset #travel<div class="CaptionComments">View all 12 comments</div></div>
</body></html>`

	embed, err := ParseEmbed([]byte(page))
	require.NoError(t, err)

	assert.Equal(t, []string{"https://scontent.example/4_4_4_n.jpg?s=1080"}, embed.Images)
	assert.Equal(t, "janedoe", embed.Username)
	assert.Equal(t, "janedoe", embed.Text.Author)
	assert.Equal(t, "Sunset over the bay with @friend #travel #Sunset #travel", embed.Text.Body)
	assert.Equal(t, []string{"travel", "Sunset"}, embed.Text.Hashtags)
	assert.Equal(t, []string{"friend"}, embed.Text.Mentions)
}

func TestParseEmbedNoStructure(t *testing.T) {
	_, err := ParseEmbed([]byte(`<html><body><div id="react-root"></div></body></html>`))
	require.ErrorIs(t, err, ErrNoImages)
}

func TestWidestSrcset(t *testing.T) {
	assert.Equal(t, "b.jpg", widestSrcset("a.jpg 320w, b.jpg 1080w, c.jpg 640w"))
	assert.Equal(t, "only.jpg", widestSrcset("only.jpg"))
	assert.Equal(t, "", widestSrcset(""))
}
