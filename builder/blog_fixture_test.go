package builder_test

import (
	"context"
	"math"
	"time"

	"github.com/wisdomatom/gqlbuilder-gen/builder"
)

// Builders in the shape gqlbuilder-gen emits for demoserver.Schema.

type queryNamespace struct{}

var Query queryNamespace

func (queryNamespace) AddId() *QueryType {
	query := NewQueryType()
	return query.AddId()
}

func (queryNamespace) AddMe(me *UserType) *QueryType {
	query := NewQueryType()
	return query.AddMe(me)
}

func (queryNamespace) AddUser(userId int, user *UserType) *QueryType {
	query := NewQueryType()
	return query.AddUser(userId, user)
}

func (queryNamespace) AddPost(postId int, post *PostType) *QueryType {
	query := NewQueryType()
	return query.AddPost(postId, post)
}

type QueryType struct {
	builder.Selection
}

func NewQueryType() *QueryType {
	return &QueryType{Selection: builder.NewSelection("Query")}
}

func (q *QueryType) AddId() *QueryType {
	q.Record("id", builder.Scalar(builder.ScalarNumeric, math.NaN()))
	return q
}

func (q *QueryType) AddMe(me *UserType) *QueryType {
	q.Record("me", builder.Nested(me))
	return q
}

func (q *QueryType) AddUser(userId int, user *UserType) *QueryType {
	q.Record("user", builder.Nested(user), builder.Arg("userId", userId))
	return q
}

func (q *QueryType) AddPost(postId int, post *PostType) *QueryType {
	q.Record("post", builder.Nested(post), builder.Arg("postId", postId))
	return q
}

func (q *QueryType) String() string {
	return builder.QueryString(q)
}

func (q *QueryType) Fetch(ctx context.Context, client *builder.Client, opts ...builder.CallOption) (*builder.Response[QueryData], error) {
	return builder.Fetch[QueryData](ctx, client, q, opts...)
}

type QueryData struct {
	Id   *int      `json:"id,omitempty"`
	Me   *UserData `json:"me,omitempty"`
	User *UserData `json:"user,omitempty"`
	Post *PostData `json:"post,omitempty"`
}

type userNamespace struct{}

var User userNamespace

func (userNamespace) AddId() *UserType {
	user := NewUserType()
	return user.AddId()
}

func (userNamespace) AddUsername() *UserType {
	user := NewUserType()
	return user.AddUsername()
}

func (userNamespace) AddCreatedAt() *UserType {
	user := NewUserType()
	return user.AddCreatedAt()
}

type UserType struct {
	builder.Selection
}

func NewUserType() *UserType {
	return &UserType{Selection: builder.NewSelection("User")}
}

func (q *UserType) AddId() *UserType {
	q.Record("id", builder.Scalar(builder.ScalarNumeric, math.NaN()))
	return q
}

func (q *UserType) AddUsername() *UserType {
	q.Record("username", builder.Scalar(builder.ScalarText, ""))
	return q
}

func (q *UserType) AddCreatedAt() *UserType {
	q.Record("createdAt", builder.Scalar(builder.ScalarDate, time.Unix(0, 0).UTC()))
	return q
}

type UserData struct {
	Id        *int       `json:"id,omitempty"`
	Username  *string    `json:"username,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type postNamespace struct{}

var Post postNamespace

func (postNamespace) AddId() *PostType {
	post := NewPostType()
	return post.AddId()
}

func (postNamespace) AddTitle() *PostType {
	post := NewPostType()
	return post.AddTitle()
}

func (postNamespace) AddWriter(writer *UserType) *PostType {
	post := NewPostType()
	return post.AddWriter(writer)
}

func (postNamespace) AddComments(comments *CommentType) *PostType {
	post := NewPostType()
	return post.AddComments(comments)
}

func (postNamespace) AddScores() *PostType {
	post := NewPostType()
	return post.AddScores()
}

type PostType struct {
	builder.Selection
}

func NewPostType() *PostType {
	return &PostType{Selection: builder.NewSelection("Post")}
}

func (q *PostType) AddId() *PostType {
	q.Record("id", builder.Scalar(builder.ScalarNumeric, math.NaN()))
	return q
}

func (q *PostType) AddTitle() *PostType {
	q.Record("title", builder.Scalar(builder.ScalarText, ""))
	return q
}

func (q *PostType) AddWriter(writer *UserType) *PostType {
	q.Record("writer", builder.Nested(writer))
	return q
}

func (q *PostType) AddComments(comments *CommentType) *PostType {
	q.Record("comments", builder.NestedList(comments))
	return q
}

func (q *PostType) AddScores() *PostType {
	q.Record("scores", builder.ScalarList(builder.ScalarNumeric, []int{}))
	return q
}

type PostData struct {
	Id       *int           `json:"id,omitempty"`
	Title    *string        `json:"title,omitempty"`
	Writer   *UserData      `json:"writer,omitempty"`
	Comments []*CommentData `json:"comments,omitempty"`
	Scores   []int          `json:"scores,omitempty"`
}

type commentNamespace struct{}

var Comment commentNamespace

func (commentNamespace) AddId() *CommentType {
	comment := NewCommentType()
	return comment.AddId()
}

func (commentNamespace) AddWriter(writer *UserType) *CommentType {
	comment := NewCommentType()
	return comment.AddWriter(writer)
}

func (commentNamespace) AddScores() *CommentType {
	comment := NewCommentType()
	return comment.AddScores()
}

type CommentType struct {
	builder.Selection
}

func NewCommentType() *CommentType {
	return &CommentType{Selection: builder.NewSelection("Comment")}
}

func (q *CommentType) AddId() *CommentType {
	q.Record("id", builder.Scalar(builder.ScalarNumeric, math.NaN()))
	return q
}

func (q *CommentType) AddWriter(writer *UserType) *CommentType {
	q.Record("writer", builder.Nested(writer))
	return q
}

func (q *CommentType) AddScores() *CommentType {
	q.Record("scores", builder.ScalarList(builder.ScalarNumeric, []int{}))
	return q
}

type CommentData struct {
	Id     *int      `json:"id,omitempty"`
	Writer *UserData `json:"writer,omitempty"`
	Scores []int     `json:"scores,omitempty"`
}
