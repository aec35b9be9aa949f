// Package browse opens URLs in the user's default browser, outside the
// process.
package browse

import "github.com/pkg/browser"

type Opener interface {
	OpenURL(url string) error
}

type BrowserOpener struct{}

func (BrowserOpener) OpenURL(url string) error {
	return browser.OpenURL(url)
}

func Default() Opener {
	return BrowserOpener{}
}

type NoopOpener struct{}

func (NoopOpener) OpenURL(string) error {
	return nil
}
