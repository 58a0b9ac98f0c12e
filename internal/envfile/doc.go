// Package envfile persists the winning backend URL for the frontend to
// consume: it sets the process environment variable and appends the
// assignment to a dotenv file, preserving whatever the file already holds.
package envfile
