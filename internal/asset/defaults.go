package asset

import "github.com/go-gl/mathgl/mgl32"

var white = mgl32.Vec4{1, 1, 1, 1}

// builtin lists every key the hangar scene draws.
var builtin = []Model{
	{Key: "lightFrame", Path: "models/ISO_Sphere.ply", Wireframe: true, IgnoreLighting: true, Color: &white},
	{Key: "star", Path: "models/ISO_Sphere.ply", IgnoreLighting: true, Color: &white},
	{Key: "wall1", Path: "models/SM_Env_Wall_Curved_01_xyz_n_rgba_uv.ply"},
	{Key: "wall2", Path: "models/SM_Env_Wall_Curved_02_xyz_n_rgba_uv.ply"},
	{Key: "wall3", Path: "models/SM_Env_Wall_Curved_03_xyz_n_rgba_uv.ply"},
	{Key: "wall4", Path: "models/SM_Env_Wall_Curved_04_xyz_n_rgba_uv.ply"},
	{Key: "wall5", Path: "models/SM_Env_Wall_Curved_05_xyz_n_rgba_uv.ply"},
	{Key: "tdoor1", Path: "models/SM_Env_Transition_Door_Curved_01_xyz_n_rgba_uv.ply"},
	{Key: "floor", Path: "models/SM_Env_Floor_04_xyz_n_rgba_uv.ply"},
	{Key: "clight", Path: "models/SM_Env_Ceiling_Light_02_xyz_n_rgba_uv.ply"},
	{Key: "door", Path: "models/SM_Env_Door_01_xyz_n_rgba_uv.ply"},
	{Key: "hangarFloor", Path: "models/SM_Env_Floor_01_xyz_n_rgba_uv.ply"},
	{Key: "cwall", Path: "models/SM_Env_Construction_Wall_01_xyz_n_rgba_uv.ply"},
	{Key: "hangarLight", Path: "models/SM_Env_Ceiling_Light_01_xyz_n_rgba_uv.ply"},
	{Key: "desk1", Path: "models/SM_Prop_Desk_01_xyz_n_rgba_uv.ply"},
	{Key: "desk2", Path: "models/SM_Prop_Desk_02_xyz_n_rgba_uv.ply"},
	{Key: "smallDesk", Path: "models/SM_Prop_Desk_04_xyz_n_rgba_uv.ply"},
	{Key: "bigDesk", Path: "models/SM_Prop_Desk_03_xyz_n_rgba_uv.ply"},
	{Key: "beaker", Path: "models/SM_Prop_Beaker_01_xyz_n_rgba_uv.ply"},
	{Key: "locker1", Path: "models/SM_Prop_Lockers_01_xyz_n_rgba_uv.ply"},
	{Key: "locker2", Path: "models/SM_Prop_Lockers_02_xyz_n_rgba_uv.ply"},
	{Key: "monitor", Path: "models/SM_Prop_Monitor_03_xyz_n_rgba_uv.ply"},
	{Key: "plant1", Path: "models/SM_Prop_Plants_01_xyz_n_rgba_uv.ply"},
	{Key: "plant2", Path: "models/SM_Prop_Plants_03_xyz_n_rgba_uv.ply"},
	{Key: "rocket", Path: "models/SM_Prop_Rocket_01_xyz_n_rgba_uv.ply"},
	{Key: "scales", Path: "models/SM_Prop_Scales_01_xyz_n_rgba_uv.ply"},
	{Key: "server", Path: "models/SM_Prop_Server_01_xyz_n_rgba_uv.ply"},
	{Key: "sign", Path: "models/SM_Prop_Sign_01_xyz_n_rgba_uv.ply"},
	{Key: "connector", Path: "models/connector.ply"},
	{Key: "corner", Path: "models/corner.ply"},
	{Key: "corner2", Path: "models/corner2.ply"},
	{Key: "corner3", Path: "models/corner3.ply"},
	{Key: "corner4", Path: "models/corner4.ply"},
}

// Default returns a store holding the built-in manifest.
func Default() *Store {
	s := NewStore()
	for _, m := range builtin {
		_ = s.Register(m)
	}
	return s
}
