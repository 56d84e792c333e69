package entity

import "time"

// Area representa un área académica u organizacional. Puede tener varios
// coordinadores asignados (CoordArea).
type Area struct {
	ID        string
	Nombre    string // único
	Activo    bool   // false = baja lógica cuando tiene coordinadores o cargas
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CoordArea asigna a un usuario con rol COORD la coordinación de un área.
// Un área puede tener varios coordinadores y un usuario coordinar varias áreas.
type CoordArea struct {
	ID        string
	AreaID    string
	UsuarioID string
	CreatedAt time.Time
}
