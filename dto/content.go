// Package dto holds the request shapes the content routes bind against.
// Create requests arrive as multipart forms (file parts are read separately
// from the form fields), update requests reuse the same tags with pointer
// fields so an absent field leaves the stored value untouched.
package dto

type CreateInfoReq struct {
	Name        string `form:"name" binding:"required"`
	Association string `form:"association"`
	Description string `form:"description"`
	Tagline     string `form:"tagline"`
	Email       string `form:"email" binding:"omitempty,email"`
	Phone       string `form:"phone"`
	SocialLinks string `form:"socialLinks"` // JSON object of platform -> URL
}

type UpdateInfoReq struct {
	Name        *string `form:"name"`
	Association *string `form:"association"`
	Description *string `form:"description"`
	Tagline     *string `form:"tagline"`
	Email       *string `form:"email" binding:"omitempty,email"`
	Phone       *string `form:"phone"`
	SocialLinks *string `form:"socialLinks"`
}

type CreatePlayerReq struct {
	Name      string `form:"name" binding:"required"`
	JerseyNo  int    `form:"jerseyNo" binding:"required"`
	Role      string `form:"role" binding:"required,oneof=Batsman Bowler All-rounder Wicketkeeper"`
	SubRole   string `form:"subRole" binding:"omitempty,oneof=Captain Vice-Captain Wicketkeeper Player"`
	Age       int    `form:"age"`
	Matches   int    `form:"matches"`
	Runs      int    `form:"runs"`
	Wickets   int    `form:"wickets"`
	BestScore string `form:"bestScore"`
}

type UpdatePlayerReq struct {
	Name      *string `form:"name"`
	JerseyNo  *int    `form:"jerseyNo"`
	Role      *string `form:"role" binding:"omitempty,oneof=Batsman Bowler All-rounder Wicketkeeper"`
	SubRole   *string `form:"subRole" binding:"omitempty,oneof=Captain Vice-Captain Wicketkeeper Player"`
	Age       *int    `form:"age"`
	Matches   *int    `form:"matches"`
	Runs      *int    `form:"runs"`
	Wickets   *int    `form:"wickets"`
	BestScore *string `form:"bestScore"`
}

// StatsDeltaReq is the per-month snapshot delta for a player.
type StatsDeltaReq struct {
	Runs    int `json:"runs"`
	Wickets int `json:"wickets"`
}

type CreateFixtureReq struct {
	Date       string `form:"date" binding:"required"`
	MatchNo    int    `form:"matchNo" binding:"required"`
	Status     string `form:"status" binding:"omitempty,oneof=upcoming ongoing completed"`
	TeamAName  string `form:"teamAName" binding:"required"`
	TeamAScore string `form:"teamAScore"`
	TeamBName  string `form:"teamBName" binding:"required"`
	TeamBScore string `form:"teamBScore"`
	Result     string `form:"result"`
	Venue      string `form:"venue"`
	Time       string `form:"time"`
}

type UpdateFixtureReq struct {
	Date       *string `form:"date"`
	MatchNo    *int    `form:"matchNo"`
	Status     *string `form:"status" binding:"omitempty,oneof=upcoming ongoing completed"`
	TeamAName  *string `form:"teamAName"`
	TeamAScore *string `form:"teamAScore"`
	TeamBName  *string `form:"teamBName"`
	TeamBScore *string `form:"teamBScore"`
	Result     *string `form:"result"`
	Venue      *string `form:"venue"`
	Time       *string `form:"time"`
}

type CreateNewsReq struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}

type UpdateNewsReq struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
}

type CreateGalleryReq struct {
	Caption string `form:"caption"`
}

type UpdateGalleryReq struct {
	Caption *string `form:"caption"`
}

type CreateCarouselReq struct {
	Caption string `form:"caption"`
}

type UpdateCarouselReq struct {
	Caption *string `form:"caption"`
}

type ContactReq struct {
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile" binding:"required,len=10,number"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
