package repository

type GetOneUserOptions struct {
	Username string
}
