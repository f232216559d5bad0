package dvdbind

// nativeStructs holds every described native struct. Registration
// order mirrors the native headers: the navigation context is defined
// before the playback and navigation records it embeds by value, so
// those definitions stay queued in the registry until the records
// arrive and are patched in exactly once.
var nativeStructs = mustRegisterStructs()

func mustRegisterStructs() *Registry {
	r := NewRegistry()
	steps := []func(*Registry) error{
		registerCSSStructs,
		registerReaderStructs,
		registerNavStructs,
		registerIFOStructs,
		registerNavRecordStructs,
	}
	for _, step := range steps {
		if err := step(r); err != nil {
			panic(err)
		}
	}
	if err := r.Finalize(); err != nil {
		panic(err)
	}
	verifyPublishedSizes(r)
	return r
}

// verifyPublishedSizes checks computed layouts against the size
// constants the native headers publish. Failing here means the layout
// engine cannot be trusted on this host.
func verifyPublishedSizes(r *Registry) {
	mustStruct(r, "dvd_time_t").AssertSize(4)
	mustStruct(r, "video_attr_t").AssertSize(2)
	mustStruct(r, "audio_attr_t").AssertSize(8)
	mustStruct(r, "subp_attr_t").AssertSize(6)
	mustStruct(r, "multichannel_ext_t").AssertSize(24)
	mustStruct(r, "user_ops_t").AssertSize(4)
	mustStruct(r, "cell_playback_t").AssertSize(24)
	mustStruct(r, "cell_position_t").AssertSize(4)
	mustStruct(r, "vts_attributes_t").AssertSize(vtsAttributesSize)
	mustStruct(r, "pgc_t").AssertOffset("command_tbl", pgcFixedSize)
	mustStruct(r, "btni_t").AssertSize(18)
}

func mustStruct(r *Registry, name string) *StructDesc {
	d, ok := r.Struct(name)
	if !ok {
		panic("struct " + name + " not registered")
	}
	return d
}
