// Package views declares the checkout application's views and the route
// table that binds them to paths.
package views

import "github.com/JaimeStill/checkout-shell/pkg/navigation"

// View identifiers for the Home, Success and Failure views. The values are
// the template keys registered by the page shell.
const (
	Home    navigation.View = "home"
	Success navigation.View = "success"
	Failure navigation.View = "failure"
)

// Route names used for programmatic navigation.
const (
	RouteHome    = "Home"
	RouteSuccess = "Success"
	RouteFail    = "Fail"
)

// Routes returns the checkout route declaration in order.
func Routes() []navigation.Route {
	return []navigation.Route{
		{Path: "/", Name: RouteHome, View: Home},
		{Path: "/success", Name: RouteSuccess, View: Success},
		{Path: "/failure", Name: RouteFail, View: Failure},
	}
}

// NewTable validates the checkout routes and builds the route table.
func NewTable() (*navigation.Table, error) {
	return navigation.New(Routes()...)
}
