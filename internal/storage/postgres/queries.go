package postgres

const (
	createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id           BIGINT PRIMARY KEY,
  nickname     TEXT NOT NULL DEFAULT '',
  account_id   TEXT NOT NULL DEFAULT '',
  api_key      TEXT NOT NULL DEFAULT '',
  project_key  TEXT NOT NULL DEFAULT '',
  is_active    BOOLEAN
)`

	getUserById = `
SELECT
  id, nickname, account_id, api_key, project_key, is_active
FROM users
WHERE id = $1
`

	addUser = `
INSERT INTO users (id, nickname, account_id, api_key, project_key, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
`

	updateUser = `
UPDATE users SET
  nickname = $1,
  account_id = $2,
  api_key = $3,
  project_key = $4,
  is_active = $5
WHERE id = $6
`

	removeUser = `
DELETE FROM users
WHERE id = $1
`

	checkUserExists = `
SELECT 1 FROM users
WHERE id = $1
`
)
