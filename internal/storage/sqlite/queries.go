package sqlite

const (
	createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id           INTEGER PRIMARY KEY,
  nickname     TEXT NOT NULL DEFAULT '',
  account_id   TEXT NOT NULL DEFAULT '',
  api_key      TEXT NOT NULL DEFAULT '',
  project_key  TEXT NOT NULL DEFAULT '',
  is_active    BIT
)`

	getUserById = `
SELECT
  id, nickname, account_id, api_key, project_key, is_active
FROM users
WHERE id = ?
`

	addUser = `
INSERT INTO users (id, nickname, account_id, api_key, project_key, is_active)
VALUES (?, ?, ?, ?, ?, ?)
`

	updateUser = `
UPDATE users SET
  nickname = ?,
  account_id = ?,
  api_key = ?,
  project_key = ?,
  is_active = ?
WHERE id = ?
`

	removeUser = `
DELETE FROM users
WHERE id = ?
`

	checkUserExists = `
SELECT 1 FROM users
WHERE id = ?
`
)
