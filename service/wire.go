package service

import (
	"Memo/dao"
	"Memo/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(NoteService), "*"),
	wire.Bind(new(INoteService), new(*NoteService)),

	wire.Struct(new(NoteShareService), "*"),
	wire.Bind(new(INoteShareService), new(*NoteShareService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Bind(new(NoteStore), new(*dao.NoteDAO)),
	wire.Bind(new(NoteReader), new(*dao.NoteDAO)),
	wire.Bind(new(VersionStore), new(*dao.NoteVersionDAO)),
	wire.Bind(new(ShareStore), new(*dao.NoteShareDAO)),
	wire.Bind(new(ShareLookup), new(*dao.NoteShareDAO)),
	wire.Bind(new(IdentityStore), new(*dao.Users)),
	wire.Bind(new(UserStore), new(*dao.Users)),
	wire.Bind(new(NoteCache), new(*cache.NoteStorage)),
	wire.Bind(new(ShareCache), new(*cache.NoteStorage)),
)
