package auth

import (
	"github.com/gofiber/fiber/v2"
)

// AuthController adapts the signup and signin flows to fiber routes. The
// envelope's StatusCode becomes the HTTP status, the envelope itself is the
// response body.
type AuthController struct {
	Logger Logger
	Signup *SignupHandler
	Signin *SigninHandler
}

type AuthControllerOption func(*AuthController) *AuthController

// NewAuthController creates a controller from options
func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Signup == nil {
		panic("Missing signup handler in auth controller...")
	}

	if c.Signin == nil {
		panic("Missing signin handler in auth controller...")
	}

	return c
}

func WithSignupHandler(h *SignupHandler) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Signup = h
		return c
	}
}

func WithSigninHandler(h *SigninHandler) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Signin = h
		return c
	}
}

func WithControllerLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = logger
		return c
	}
}

// RegisterAuthRoutes mounts the public routes on a fiber app
func RegisterAuthRoutes(app *fiber.App, controller *AuthController) {
	app.Get("/", controller.Root)
	app.Post("/auth/signup", controller.SignupPost)
	app.Post("/auth/login", controller.LoginPost)
}

func (a *AuthController) Root(ctx *fiber.Ctx) error {
	return ctx.SendString("Hello from Sample Auth API")
}

func (a *AuthController) SignupPost(ctx *fiber.Ctx) error {
	payload := new(SignupRequest)

	if err := ctx.BodyParser(payload); err != nil {
		a.Logger.Error("signup parse payload: %v", err)
		res := BadInput[*PublicUser]("invalid request body")
		return ctx.Status(res.StatusCode).JSON(res)
	}

	res := a.Signup.Execute(ctx.UserContext(), *payload)
	return ctx.Status(res.StatusCode).JSON(res)
}

func (a *AuthController) LoginPost(ctx *fiber.Ctx) error {
	payload := new(SigninRequest)

	if err := ctx.BodyParser(payload); err != nil {
		a.Logger.Error("signin parse payload: %v", err)
		res := BadInput[*LoginData]("invalid request body")
		return ctx.Status(res.StatusCode).JSON(res)
	}

	res := a.Signin.Execute(ctx.UserContext(), *payload)
	return ctx.Status(res.StatusCode).JSON(res)
}
