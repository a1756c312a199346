package service

// TweetServiceWrapper defines middleware composition for TweetService.
// Implementations wrap an existing TweetService to add behavior such as
// validating.
type TweetServiceWrapper interface {
	Wrap(TweetService) TweetService // returns a decorated TweetService applying additional behavior
}
