package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)
	dynamicMiddleware := standardMiddleware.Append(app.authenticate)
	authMiddleware := dynamicMiddleware.Append(app.requireAuth)

	mux := pat.New()

	// pat treats a trailing "/" as a prefix match (except for "/" itself)
	// and takes the first pattern that matches, so specific routes are
	// registered before their prefixes.

	// JSON API
	mux.Get("/api/listings/:id/", standardMiddleware.ThenFunc(app.apiHandler.GetListing))
	mux.Get("/api/listings/", standardMiddleware.ThenFunc(app.apiHandler.ListListings))

	// Listings
	mux.Get("/listings/:id/", dynamicMiddleware.ThenFunc(app.listingHandler.ListingDetail))
	mux.Get("/listings/", dynamicMiddleware.ThenFunc(app.listingHandler.ListListings))
	mux.Get("/search/", dynamicMiddleware.ThenFunc(app.listingHandler.Search))
	mux.Get("/post-listing/", authMiddleware.ThenFunc(app.listingHandler.PostListingForm))
	mux.Post("/post-listing/", authMiddleware.ThenFunc(app.listingHandler.PostListing))

	// Inquiries: only POST submits; the handler bounces every other method
	// to /listings/, so all verbs route to it.
	mux.Post("/contact/", dynamicMiddleware.ThenFunc(app.contactHandler.SubmitInquiry))
	mux.Get("/contact/", dynamicMiddleware.ThenFunc(app.contactHandler.SubmitInquiry))
	mux.Put("/contact/", dynamicMiddleware.ThenFunc(app.contactHandler.SubmitInquiry))
	mux.Del("/contact/", dynamicMiddleware.ThenFunc(app.contactHandler.SubmitInquiry))

	// Auth
	mux.Get("/register/", dynamicMiddleware.ThenFunc(app.userHandler.RegisterForm))
	mux.Post("/register/", dynamicMiddleware.ThenFunc(app.userHandler.Register))
	mux.Get("/login/", dynamicMiddleware.ThenFunc(app.userHandler.LoginForm))
	mux.Post("/login/", dynamicMiddleware.ThenFunc(app.userHandler.Login))
	mux.Post("/logout/", authMiddleware.ThenFunc(app.userHandler.Logout))
	mux.Get("/dashboard/", authMiddleware.ThenFunc(app.pageHandler.Dashboard))

	// Pages and static uploads
	mux.Get("/about/", dynamicMiddleware.ThenFunc(app.pageHandler.About))
	mux.Get("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(app.uploadDir))))
	mux.Get("/", dynamicMiddleware.ThenFunc(app.pageHandler.Home))

	return mux
}
