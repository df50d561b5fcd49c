package nav

// Navigator moves the hosting application to another path.
type Navigator interface {
	Navigate(href string)
}

type NavigateFunc func(href string)

// Navigate implements Navigator.
func (fn NavigateFunc) Navigate(href string) {
	fn(href)
}

var _ Navigator = NavigateFunc(nil)
