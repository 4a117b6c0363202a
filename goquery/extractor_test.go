package goquery_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/wikimd"
	wikigoquery "github.com/fwojciec/wikimd/goquery"
	"github.com/fwojciec/wikimd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html lang="fa" dir="rtl">
<head><title>نظریه گراف - ویکی‌پدیا</title></head>
<body>
<div id="mw-navigation"><p>navigation</p></div>
<div id="content">
	<h1 id="firstHeading">نظریه گراف</h1>
	<div id="bodyContent">
		<div class="mw-parser-output">
			<p>نظریه گراف شاخه‌ای از ریاضیات است.[]</p>
			<h2><span class="mw-headline">تاریخچه</span></h2>
			<p>اویلر <b>۱۷۳۶</b></p>
			<span class="mwe-math-element">E = V - 1</span>
			<h2><span class="mw-headline">جستارهای وابسته</span></h2>
			<ul><li>درخت</li></ul>
			<p>پایان</p>
		</div>
		<div class="printfooter"><p>بازیابی‌شده از</p></div>
	</div>
</div>
<div id="footer"><p>footer</p></div>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("renders body content up to related topics", func(t *testing.T) {
		t.Parallel()

		e := wikigoquery.NewExtractor("fa")

		got, err := e.Extract(articlePage)

		require.NoError(t, err)
		expected := "\nنظریه گراف شاخه‌ای از ریاضیات است.\n" +
			"\n## تاریخچه\nتاریخچه\n" +
			"\nاویلر ۱۷۳۶\n۱۷۳۶\n" +
			"\n$$E = V - 1$$\nE = V - 1\n"
		assert.Equal(t, expected, got)
		assert.NotContains(t, got, "navigation")
		assert.NotContains(t, got, "پایان")
		assert.NotContains(t, got, "بازیابی")
	})

	t.Run("returns ENOTFOUND without body content", func(t *testing.T) {
		t.Parallel()

		e := wikigoquery.NewExtractor("en")

		_, err := e.Extract(`<html><body><div id="content"><p>text</p></div></body></html>`)

		require.Error(t, err)
		assert.Equal(t, wikimd.ENOTFOUND, wikimd.ErrorCode(err))
		assert.Equal(t, "failed to locate main content", wikimd.ErrorMessage(err))
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		e := wikigoquery.NewExtractor("en")

		got, err := e.Extract(`<div id="bodyContent"><p>Unclosed <b>bold<p>Next</div></span></td>`)

		require.NoError(t, err)
		assert.Contains(t, got, "Unclosed")
		assert.Contains(t, got, "Next")
	})

	t.Run("returns empty markdown for empty body", func(t *testing.T) {
		t.Parallel()

		got, err := wikigoquery.NewExtractor("en").Extract(`<div id="bodyContent"></div>`)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("uses language marker", func(t *testing.T) {
		t.Parallel()

		page := `<div id="bodyContent"><p>Body</p><h2>See also</h2><p>Links</p></div>`

		got, err := wikigoquery.NewExtractor("en").Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "\nBody\n", got)
	})

	t.Run("empty language uses english marker", func(t *testing.T) {
		t.Parallel()

		page := `<div id="bodyContent"><p>Body</p><h2>See also</h2><p>Links</p></div>`

		got, err := wikigoquery.NewExtractor("").Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "\nBody\n", got)
	})

	t.Run("custom marker overrides language", func(t *testing.T) {
		t.Parallel()

		page := `<div id="bodyContent"><p>Body</p><h2>References</h2><p>Refs</p></div>`

		got, err := wikigoquery.NewExtractor("en", wikigoquery.WithMarker("References")).Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "\nBody\n", got)
	})

	t.Run("deduplicates math text when configured", func(t *testing.T) {
		t.Parallel()

		page := `<div id="bodyContent"><span class="math">a+b</span></div>`

		got, err := wikigoquery.NewExtractor("en", wikigoquery.WithMathTextDeduplication()).Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "\n$$a+b$$\n", got)
	})
}

func TestExtractor_WithConverter(t *testing.T) {
	t.Parallel()

	t.Run("converts content before the marker", func(t *testing.T) {
		t.Parallel()

		var received string
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				received = html
				return "converted", nil
			},
		}

		got, err := wikigoquery.NewExtractor("fa", wikigoquery.WithConverter(conv)).Extract(articlePage)

		require.NoError(t, err)
		assert.Equal(t, "converted", got)
		assert.Contains(t, received, "تاریخچه")
		assert.NotContains(t, received, "جستارهای وابسته")
		assert.NotContains(t, received, "پایان")
		assert.NotContains(t, received, "printfooter")
		assert.NotContains(t, received, "navigation")
	})

	t.Run("propagates converter errors", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(string) (string, error) {
				return "", errors.New("conversion failed")
			},
		}

		_, err := wikigoquery.NewExtractor("en", wikigoquery.WithConverter(conv)).Extract(`<div id="bodyContent"><p>x</p></div>`)

		require.Error(t, err)
	})

	t.Run("skips converter for empty content", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(string) (string, error) {
				t.Fatal("converter should not be called")
				return "", nil
			},
		}

		got, err := wikigoquery.NewExtractor("en", wikigoquery.WithConverter(conv)).Extract(`<div id="bodyContent"><h2>See also</h2><p>x</p></div>`)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
