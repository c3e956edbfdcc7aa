// Package demoserver serves a small blog schema over HTTP for integration tests.
package demoserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/samsarahq/thunder/graphql"
	"github.com/samsarahq/thunder/graphql/schemabuilder"
	"github.com/sirupsen/logrus"
)

// Schema is the SDL the server implements.
const Schema = `scalar Date

type Query {
  id: Int
  me: User
  user(userId: Int!): User
  post(postId: Int!): Post
}

type User {
  id: Int
  username: String
  createdAt: Date
}

type Post {
  id: Int
  title: String
  writer: User
  comments: [Comment]
  scores: [Int]
}

type Comment {
  id: Int
  writer: User
  scores: [Int]
}
`

// CreatedAt is the creation time of every user.
var CreatedAt = time.Date(2019, time.March, 2, 10, 30, 0, 0, time.UTC)

type User struct {
	Id        int64
	Username  string
	CreatedAt time.Time
}

type Comment struct {
	Id     int64
	Writer *User
	Scores []int64
}

type Post struct {
	Id       int64
	Title    string
	Writer   *User
	Comments []*Comment
	Scores   []int64
}

func newUser(id int64) *User {
	return &User{Id: id, Username: "namse", CreatedAt: CreatedAt}
}

func newPost(id int64) *Post {
	return &Post{
		Id:     id,
		Title:  "sorrydionysos",
		Writer: newUser(3),
		Comments: []*Comment{
			{Id: 0, Writer: newUser(4), Scores: []int64{2, 3, 4}},
			{Id: 1, Writer: newUser(4), Scores: []int64{2, 3, 4}},
		},
		Scores: []int64{1, 2, 3},
	}
}

func buildSchema() *graphql.Schema {
	schema := schemabuilder.NewSchema()
	schema.Object("User", User{})
	schema.Object("Post", Post{})
	schema.Object("Comment", Comment{})

	query := schema.Query()
	query.FieldFunc("id", func() int64 {
		return 1
	})
	query.FieldFunc("me", func() *User {
		return newUser(3)
	})
	query.FieldFunc("user", func(args struct{ UserId int64 }) *User {
		return newUser(args.UserId)
	})
	query.FieldFunc("post", func(args struct{ PostId int64 }) *Post {
		return newPost(args.PostId)
	})
	return schema.MustBuild()
}

// Server routes /graphql to a thunder handler. Thunder only speaks POST, GET
// requests carrying ?query= are rewritten into a POST body first.
type Server struct {
	router *mux.Router
	log    logrus.FieldLogger
}

// New builds the server.
func New(log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{router: mux.NewRouter(), log: log}
	handler := graphql.HTTPHandler(buildSchema())
	s.router.Handle("/graphql", handler).Methods(http.MethodPost)
	s.router.Handle("/graphql", s.getAdapter(handler)).Methods(http.MethodGet)
	s.router.HandleFunc("/fail", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal failure", http.StatusInternalServerError)
	})
	s.router.Use(s.logRequests)
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) getAdapter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		if query == "" {
			http.Error(w, "missing query parameter", http.StatusBadRequest)
			return
		}
		body, err := json.Marshal(map[string]string{"query": query})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		post := r.Clone(r.Context())
		post.Method = http.MethodPost
		post.Body = io.NopCloser(bytes.NewReader(body))
		post.ContentLength = int64(len(body))
		next.ServeHTTP(w, post)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.WithFields(logrus.Fields{"method": r.Method, "path": r.URL.Path}).Debug("demo request")
		next.ServeHTTP(w, r)
	})
}
