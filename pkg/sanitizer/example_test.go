package sanitizer_test

import (
	"fmt"

	"github.com/hiroshiyui/baudrate-sub005/pkg/sanitizer"
)

func ExampleSanitizeFederation() {
	out, _ := sanitizer.SanitizeFederation(`<p>Hello <script>alert(1)</script><em>world</em></p>`)
	fmt.Println(out)
	// Output: <p>Hello <em>world</em></p>
}

func ExampleSanitizeMarkdown() {
	out, _ := sanitizer.SanitizeMarkdown(`<a href="mailto:ops@example.com" onclick="steal()">contact</a>`)
	fmt.Println(out)
	// Output: <a href="mailto:ops@example.com" rel="nofollow noopener">contact</a>
}

func ExampleStripTags() {
	out, _ := sanitizer.StripTags("<b>bold</b> &amp; unsafe")
	fmt.Println(out)
	// Output: bold & unsafe
}
