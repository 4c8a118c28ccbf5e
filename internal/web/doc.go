// Package web renders the feedback board as server-side HTML pages.
//
// Components are plain templ.Component values. Stored titles, descriptions
// and comments are already HTML-escaped by the board service, so they are
// decoded once and escaped again on output; every character is escaped
// exactly once in the final page.
package web
