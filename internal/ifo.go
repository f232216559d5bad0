package dvdbind

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Sizes the native headers publish or that the packed layout rules
// fix. The byte-array mirrors below are sized with these constants
// and the registry asserts the computed layouts agree.
const (
	commandDataSize      = 8
	vtsAttributesSize    = 542
	vtsAttributesMinSize = 356
	pgcFixedSize         = 236
	ptlMaitNumLevel      = 8

	dvdTimeSize         = 4
	videoAttrSize       = 2
	audioAttrSize       = 8
	subpAttrSize        = 6
	multichannelExtSize = 24
	userOpsSize         = 4
	cellPlaybackSize    = 24
	cellPositionSize    = 4
	playbackTypeSize    = 1
	titleInfoSize       = 12
	pttInfoSize         = 4
	txtDtSize           = 228
	vmgiMatSize         = 510
	vtsiMatSize         = 984
)

// registerIFOStructs describes the attribute-packed IFO record set.
func registerIFOStructs(r *Registry) error {
	if err := r.Define("dvd_time_t", true,
		FieldU8("hour"),
		FieldU8("minute"),
		FieldU8("second"),
		FieldU8("frame_u"),
	); err != nil {
		return err
	}
	if err := r.Define("vm_cmd_t", true,
		Array(FieldU8("bytes"), commandDataSize),
	); err != nil {
		return err
	}

	if err := r.Define("video_attr_t", true,
		FieldBits("mpeg_version", 1, 2),
		FieldBits("video_format", 1, 2),
		FieldBits("display_aspect_ratio", 1, 2),
		FieldBits("permitted_df", 1, 2),
		FieldBits("line21_cc_1", 1, 1),
		FieldBits("line21_cc_2", 1, 1),
		FieldBits("unknown1", 1, 1),
		FieldBits("bit_rate", 1, 1),
		FieldBits("picture_size", 1, 2),
		FieldBits("letterboxed", 1, 1),
		FieldBits("film_mode", 1, 1),
	); err != nil {
		return err
	}

	karaoke := NewStruct("audio_attr_karaoke", true,
		FieldBits("unknown4", 1, 1),
		FieldBits("channel_assignment", 1, 3),
		FieldBits("version", 1, 2),
		FieldBits("mc_intro", 1, 1),
		FieldBits("mode", 1, 1),
	)
	surround := NewStruct("audio_attr_surround", true,
		FieldBits("unknown5", 1, 4),
		FieldBits("dolby_encoded", 1, 1),
		FieldBits("unknown6", 1, 3),
	)
	if err := r.Define("audio_attr_t", true,
		FieldBits("audio_format", 1, 3),
		FieldBits("multichannel_extension", 1, 1),
		FieldBits("lang_type", 1, 2),
		FieldBits("application_mode", 1, 2),
		FieldBits("quantization", 1, 2),
		FieldBits("sample_frequency", 1, 2),
		FieldBits("unknown1", 1, 1),
		FieldBits("channels", 1, 3),
		FieldU16("lang_code"),
		FieldU8("lang_extension"),
		FieldU8("code_extension"),
		FieldU8("unknown3"),
		FieldUnion("app_info",
			FieldStruct("karaoke", karaoke),
			FieldStruct("surround", surround),
		),
	); err != nil {
		return err
	}

	if err := r.Define("multichannel_ext_t", true,
		FieldBits("zero1", 1, 7),
		FieldBits("ach0_gme", 1, 1),
		FieldBits("zero2", 1, 7),
		FieldBits("ach1_gme", 1, 1),
		FieldBits("zero3", 1, 4),
		FieldBits("ach2_gv1e", 1, 1),
		FieldBits("ach2_gv2e", 1, 1),
		FieldBits("ach2_gm1e", 1, 1),
		FieldBits("ach2_gm2e", 1, 1),
		FieldBits("zero4", 1, 4),
		FieldBits("ach3_gv1e", 1, 1),
		FieldBits("ach3_gv2e", 1, 1),
		FieldBits("ach3_gmAe", 1, 1),
		FieldBits("ach3_se2e", 1, 1),
		FieldBits("zero5", 1, 4),
		FieldBits("ach4_gv1e", 1, 1),
		FieldBits("ach4_gv2e", 1, 1),
		FieldBits("ach4_gmBe", 1, 1),
		FieldBits("ach4_seBe", 1, 1),
		Array(FieldU8("zero6"), 19),
	); err != nil {
		return err
	}

	if err := r.Define("subp_attr_t", true,
		FieldBits("code_mode", 1, 3),
		FieldBits("zero1", 1, 3),
		FieldBits("type", 1, 2),
		FieldU8("zero2"),
		FieldU16("lang_code"),
		FieldU8("lang_extension"),
		FieldU8("code_extension"),
	); err != nil {
		return err
	}

	vmCmd, _ := r.Struct("vm_cmd_t")
	if err := r.Define("pgc_command_tbl_t", true,
		FieldU16("nr_of_pre"),
		FieldU16("nr_of_post"),
		FieldU16("nr_of_cell"),
		FieldU16("last_byte"),
		FieldPtr("pre_cmds", vmCmd),
		FieldPtr("post_cmds", vmCmd),
		FieldPtr("cell_cmds", vmCmd),
	); err != nil {
		return err
	}

	dvdTime, _ := r.Struct("dvd_time_t")
	if err := r.Define("cell_playback_t", true,
		FieldBits("block_mode", 1, 2),
		FieldBits("block_type", 1, 2),
		FieldBits("seamless_play", 1, 1),
		FieldBits("interleaved", 1, 1),
		FieldBits("stc_discontinuity", 1, 1),
		FieldBits("seamless_angle", 1, 1),
		FieldBits("zero_1", 1, 1),
		FieldBits("playback_mode", 1, 1),
		FieldBits("restricted", 1, 1),
		FieldBits("cell_type", 1, 5),
		FieldU8("still_time"),
		FieldU8("cell_cmd_nr"),
		FieldStruct("playback_time", dvdTime),
		FieldU32("first_sector"),
		FieldU32("first_ilvu_end_sector"),
		FieldU32("last_vobu_start_sector"),
		FieldU32("last_sector"),
	); err != nil {
		return err
	}

	if err := r.Define("cell_position_t", true,
		FieldU16("vob_id_nr"),
		FieldU8("zero_1"),
		FieldU8("cell_nr"),
	); err != nil {
		return err
	}

	if err := r.Define("user_ops_t", true,
		FieldBits("zero", 1, 7),
		FieldBits("video_pres_mode_change", 1, 1),
		FieldBits("karaoke_audio_pres_mode_change", 1, 1),
		FieldBits("angle_change", 1, 1),
		FieldBits("subpic_stream_change", 1, 1),
		FieldBits("audio_stream_change", 1, 1),
		FieldBits("pause_on", 1, 1),
		FieldBits("still_off", 1, 1),
		FieldBits("button_select_or_activate", 1, 1),
		FieldBits("resume", 1, 1),
		FieldBits("chapter_menu_call", 1, 1),
		FieldBits("angle_menu_call", 1, 1),
		FieldBits("audio_menu_call", 1, 1),
		FieldBits("subpic_menu_call", 1, 1),
		FieldBits("root_menu_call", 1, 1),
		FieldBits("title_menu_call", 1, 1),
		FieldBits("backward_scan", 1, 1),
		FieldBits("forward_scan", 1, 1),
		FieldBits("next_pg_search", 1, 1),
		FieldBits("prev_or_top_pg_search", 1, 1),
		FieldBits("time_or_chapter_search", 1, 1),
		FieldBits("go_up", 1, 1),
		FieldBits("stop", 1, 1),
		FieldBits("title_play", 1, 1),
		FieldBits("chapter_search_or_play", 1, 1),
		FieldBits("title_or_time_play", 1, 1),
	); err != nil {
		return err
	}

	userOps, _ := r.Struct("user_ops_t")
	commandTbl, _ := r.Struct("pgc_command_tbl_t")
	cellPlayback, _ := r.Struct("cell_playback_t")
	cellPosition, _ := r.Struct("cell_position_t")
	if err := r.Define("pgc_t", true,
		FieldU16("zero_1"),
		FieldU8("nr_of_programs"),
		FieldU8("nr_of_cells"),
		FieldStruct("playback_time", dvdTime),
		FieldStruct("prohibited_ops", userOps),
		Array(FieldU16("audio_control"), 8),
		Array(FieldU32("subp_control"), 32),
		FieldU16("next_pgc_nr"),
		FieldU16("prev_pgc_nr"),
		FieldU16("goup_pgc_nr"),
		FieldU8("pg_playback_mode"),
		FieldU8("still_time"),
		Array(FieldU32("palette"), 16),
		FieldU16("command_tbl_offset"),
		FieldU16("program_map_offset"),
		FieldU16("cell_playback_offset"),
		FieldU16("cell_position_offset"),
		FieldPtr("command_tbl", commandTbl),
		FieldOpaquePtr("program_map"),
		FieldPtr("cell_playback", cellPlayback),
		FieldPtr("cell_position", cellPosition),
		FieldInt("ref_count"),
	); err != nil {
		return err
	}

	pgc, _ := r.Struct("pgc_t")
	if err := r.Define("pgci_srp_t", true,
		FieldU8("entry_id"),
		FieldBits("block_mode", 1, 2),
		FieldBits("block_type", 1, 2),
		FieldBits("zero_1", 1, 4),
		FieldU16("ptl_id_mask"),
		FieldU32("pgc_start_byte"),
		FieldPtr("pgc", pgc),
	); err != nil {
		return err
	}

	pgciSRP, _ := r.Struct("pgci_srp_t")
	if err := r.Define("pgcit_t", true,
		FieldU16("nr_of_pgci_srp"),
		FieldU16("zero_1"),
		FieldU32("last_byte"),
		FieldPtr("pgci_srp", pgciSRP),
		FieldInt("ref_count"),
	); err != nil {
		return err
	}

	pgcit, _ := r.Struct("pgcit_t")
	if err := r.Define("pgci_lu_t", true,
		FieldU16("lang_code"),
		FieldU8("lang_extension"),
		FieldU8("exists"),
		FieldU32("lang_start_byte"),
		FieldPtr("pgcit", pgcit),
	); err != nil {
		return err
	}

	pgciLU, _ := r.Struct("pgci_lu_t")
	if err := r.Define("pgci_ut_t", true,
		FieldU16("nr_of_lus"),
		FieldU16("zero_1"),
		FieldU32("last_byte"),
		FieldPtr("lu", pgciLU),
	); err != nil {
		return err
	}

	if err := r.Define("cell_adr_t", true,
		FieldU16("vob_id"),
		FieldU8("cell_id"),
		FieldU8("zero_1"),
		FieldU32("start_sector"),
		FieldU32("last_sector"),
	); err != nil {
		return err
	}

	cellAdr, _ := r.Struct("cell_adr_t")
	if err := r.Define("c_adt_t", true,
		FieldU16("nr_of_vobs"),
		FieldU16("zero_1"),
		FieldU32("last_byte"),
		FieldPtr("cell_adr_table", cellAdr),
	); err != nil {
		return err
	}

	if err := r.Define("vobu_admap_t", true,
		FieldU32("last_byte"),
		FieldOpaquePtr("vobu_start_sectors"),
	); err != nil {
		return err
	}

	videoAttr, _ := r.Struct("video_attr_t")
	audioAttr, _ := r.Struct("audio_attr_t")
	subpAttr, _ := r.Struct("subp_attr_t")
	multichannel, _ := r.Struct("multichannel_ext_t")

	if err := r.Define("vmgi_mat_t", true,
		Array(FieldU8("vmg_identifier"), 12),
		FieldU32("vmg_last_sector"),
		Array(FieldU8("zero_1"), 12),
		FieldU32("vmgi_last_sector"),
		FieldU8("zero_2"),
		FieldU8("specification_version"),
		FieldU32("vmg_category"),
		FieldU16("vmg_nr_of_volumes"),
		FieldU16("vmg_this_volume_nr"),
		FieldU8("disc_side"),
		Array(FieldU8("zero_3"), 19),
		FieldU16("vmg_nr_of_title_sets"),
		Array(FieldU8("provider_identifier"), 32),
		FieldU64("vmg_pos_code"),
		Array(FieldU8("zero_4"), 24),
		FieldU32("vmgi_last_byte"),
		FieldU32("first_play_pgc"),
		Array(FieldU8("zero_5"), 56),
		FieldU32("vmgm_vobs"),
		FieldU32("tt_srpt"),
		FieldU32("vmgm_pgci_ut"),
		FieldU32("ptl_mait"),
		FieldU32("vts_atrt"),
		FieldU32("txtdt_mgi"),
		FieldU32("vmgm_c_adt"),
		FieldU32("vmgm_vobu_admap"),
		Array(FieldU8("zero_6"), 32),
		FieldStruct("vmgm_video_attr", videoAttr),
		FieldU8("zero_7"),
		FieldU8("nr_of_vmgm_audio_streams"),
		FieldStruct("vmgm_audio_attr", audioAttr),
		Array(FieldStruct("zero_8", audioAttr), 7),
		Array(FieldU8("zero_9"), 17),
		FieldU8("nr_of_vmgm_subp_streams"),
		FieldStruct("vmgm_subp_attr", subpAttr),
		Array(FieldStruct("zero_10", subpAttr), 27),
	); err != nil {
		return err
	}

	if err := r.Define("playback_type_t", true,
		FieldBits("zero_1", 1, 1),
		FieldBits("multi_or_random_pgc_title", 1, 1),
		FieldBits("jlc_exists_in_cell_cmd", 1, 1),
		FieldBits("jlc_exists_in_prepost_cmd", 1, 1),
		FieldBits("jlc_exists_in_button_cmd", 1, 1),
		FieldBits("jlc_exists_in_tt_dom", 1, 1),
		FieldBits("chapter_search_or_play", 1, 1),
		FieldBits("title_or_time_play", 1, 1),
	); err != nil {
		return err
	}

	playbackType, _ := r.Struct("playback_type_t")
	if err := r.Define("title_info_t", true,
		FieldStruct("pb_ty", playbackType),
		FieldU8("nr_of_angles"),
		FieldU16("nr_of_ptts"),
		FieldU16("parental_id"),
		FieldU8("title_set_nr"),
		FieldU8("vts_ttn"),
		FieldU32("title_set_sector"),
	); err != nil {
		return err
	}

	titleInfo, _ := r.Struct("title_info_t")
	if err := r.Define("tt_srpt_t", true,
		FieldU16("nr_of_srpts"),
		FieldU16("zero_1"),
		FieldU32("last_byte"),
		FieldPtr("title", titleInfo),
	); err != nil {
		return err
	}

	if err := r.Define("ptl_mait_country_t", true,
		FieldU16("country_code"),
		FieldU16("zero_1"),
		FieldU16("pf_ptl_mai_start_byte"),
		FieldU16("zero_2"),
		FieldOpaquePtr("pf_ptl_mai"),
	); err != nil {
		return err
	}

	country, _ := r.Struct("ptl_mait_country_t")
	if err := r.Define("ptl_mait_t", true,
		FieldU16("nr_of_countries"),
		FieldU16("nr_of_vtss"),
		FieldU32("last_byte"),
		FieldPtr("countries", country),
	); err != nil {
		return err
	}

	if err := r.Define("vts_attributes_t", true,
		FieldU32("last_byte"),
		FieldU32("vts_cat"),
		FieldStruct("vtsm_vobs_attr", videoAttr),
		FieldU8("zero_1"),
		FieldU8("nr_of_vtsm_audio_streams"),
		FieldStruct("vtsm_audio_attr", audioAttr),
		Array(FieldStruct("zero_2", audioAttr), 7),
		Array(FieldU8("zero_3"), 16),
		FieldU8("zero_4"),
		FieldU8("nr_of_vtsm_subp_streams"),
		FieldStruct("vtsm_subp_attr", subpAttr),
		Array(FieldStruct("zero_5", subpAttr), 27),
		Array(FieldU8("zero_6"), 2),
		FieldStruct("vtstt_vobs_video_attr", videoAttr),
		FieldU8("zero_7"),
		FieldU8("nr_of_vtstt_audio_streams"),
		Array(FieldStruct("vtstt_audio_attr", audioAttr), 8),
		Array(FieldU8("zero_8"), 16),
		FieldU8("zero_9"),
		FieldU8("nr_of_vtstt_subp_streams"),
		Array(FieldStruct("vtstt_subp_attr", subpAttr), 32),
	); err != nil {
		return err
	}

	vtsAttributes, _ := r.Struct("vts_attributes_t")
	if err := r.Define("vts_atrt_t", true,
		FieldU16("nr_of_vtss"),
		FieldU16("zero_1"),
		FieldU32("last_byte"),
		FieldPtr("vts", vtsAttributes),
		FieldOpaquePtr("vts_atrt_offsets"),
	); err != nil {
		return err
	}

	if err := r.Define("txtdt_t", true,
		FieldU32("last_byte"),
		Array(FieldU16("offsets"), 100),
		FieldU16("unknown"),
		FieldU16("zero_1"),
		FieldU8("type_of_info"),
		FieldU8("unknown1"),
		FieldU8("unknown2"),
		FieldU8("unknown3"),
		FieldU8("unknown4"),
		FieldU8("unknown5"),
		FieldU16("offset"),
		Array(FieldU8("text"), 12),
	); err != nil {
		return err
	}

	txtdt, _ := r.Struct("txtdt_t")
	if err := r.Define("txtdt_lu_t", true,
		FieldU16("lang_code"),
		FieldU8("zero_1"),
		FieldU8("char_set"),
		FieldU32("txtdt_start_byte"),
		FieldPtr("txtdt", txtdt),
	); err != nil {
		return err
	}

	txtdtLU, _ := r.Struct("txtdt_lu_t")
	if err := r.Define("txtdt_mgi_t", true,
		Array(FieldU8("disc_name"), 12),
		FieldU16("unknown1"),
		FieldU16("nr_of_language_units"),
		FieldU32("last_byte"),
		FieldPtr("lu", txtdtLU),
	); err != nil {
		return err
	}

	if err := r.Define("vtsi_mat_t", true,
		Array(FieldU8("vts_identifier"), 12),
		FieldU32("vts_last_sector"),
		Array(FieldU8("zero_1"), 12),
		FieldU32("vtsi_last_sector"),
		FieldU8("zero_2"),
		FieldU8("specification_version"),
		FieldU32("vts_category"),
		FieldU16("zero_3"),
		FieldU16("zero_4"),
		FieldU8("zero_5"),
		Array(FieldU8("zero_6"), 19),
		FieldU16("zero_7"),
		Array(FieldU8("zero_8"), 32),
		FieldU64("zero_9"),
		Array(FieldU8("zero_10"), 24),
		FieldU32("vtsi_last_byte"),
		FieldU32("zero_11"),
		Array(FieldU8("zero_12"), 56),
		FieldU32("vtsm_vobs"),
		FieldU32("vtstt_vobs"),
		FieldU32("vts_ptt_srpt"),
		FieldU32("vts_pgcit"),
		FieldU32("vtsm_pgci_ut"),
		FieldU32("vts_tmapt"),
		FieldU32("vtsm_c_adt"),
		FieldU32("vtsm_vobu_admap"),
		FieldU32("vts_c_adt"),
		FieldU32("vts_vobu_admap"),
		Array(FieldU8("zero_13"), 24),
		FieldStruct("vtsm_video_attr", videoAttr),
		FieldU8("zero_14"),
		FieldU8("nr_of_vtsm_audio_streams"),
		FieldStruct("vtsm_audio_attr", audioAttr),
		Array(FieldStruct("zero_15", audioAttr), 7),
		Array(FieldU8("zero_16"), 17),
		FieldU8("nr_of_vtsm_subp_streams"),
		FieldStruct("vtsm_subp_attr", subpAttr),
		Array(FieldStruct("zero_17", subpAttr), 27),
		Array(FieldU8("zero_18"), 2),
		FieldStruct("vts_video_attr", videoAttr),
		FieldU8("zero_19"),
		FieldU8("nr_of_vts_audio_streams"),
		Array(FieldStruct("vts_audio_attr", audioAttr), 8),
		Array(FieldU8("zero_20"), 17),
		FieldU8("nr_of_vts_subp_streams"),
		Array(FieldStruct("vts_subp_attr", subpAttr), 32),
		FieldU16("zero_21"),
		Array(FieldStruct("vts_mu_audio_attr", multichannel), 8),
	); err != nil {
		return err
	}

	if err := r.Define("ptt_info_t", true,
		FieldU16("pgcn"),
		FieldU16("pgn"),
	); err != nil {
		return err
	}

	pttInfo, _ := r.Struct("ptt_info_t")
	if err := r.Define("ttu_t", true,
		FieldU16("nr_of_ptts"),
		FieldPtr("ptt", pttInfo),
	); err != nil {
		return err
	}

	ttu, _ := r.Struct("ttu_t")
	if err := r.Define("vts_ptt_srpt_t", true,
		FieldU16("nr_of_srpts"),
		FieldU16("zero_1"),
		FieldU32("last_byte"),
		FieldPtr("title", ttu),
		FieldOpaquePtr("ttu_offset"),
	); err != nil {
		return err
	}

	if err := r.Define("vts_tmap_t", true,
		FieldU8("tmu"),
		FieldU8("zero_1"),
		FieldU16("nr_of_entries"),
		FieldOpaquePtr("map_ent"),
	); err != nil {
		return err
	}

	tmap, _ := r.Struct("vts_tmap_t")
	if err := r.Define("vts_tmapt_t", true,
		FieldU16("nr_of_tmaps"),
		FieldU16("zero_1"),
		FieldU32("last_byte"),
		FieldPtr("tmap", tmap),
		FieldOpaquePtr("tmap_offset"),
	); err != nil {
		return err
	}

	vmgiMat, _ := r.Struct("vmgi_mat_t")
	ttSrpt, _ := r.Struct("tt_srpt_t")
	ptlMait, _ := r.Struct("ptl_mait_t")
	vtsAtrt, _ := r.Struct("vts_atrt_t")
	txtdtMgi, _ := r.Struct("txtdt_mgi_t")
	pgciUT, _ := r.Struct("pgci_ut_t")
	cAdt, _ := r.Struct("c_adt_t")
	vobuAdmap, _ := r.Struct("vobu_admap_t")
	vtsiMat, _ := r.Struct("vtsi_mat_t")
	vtsPttSrpt, _ := r.Struct("vts_ptt_srpt_t")
	vtsTmapt, _ := r.Struct("vts_tmapt_t")
	return r.Define("ifo_handle_t", true,
		FieldPtr("vmgi_mat", vmgiMat),
		FieldPtr("tt_srpt", ttSrpt),
		FieldPtr("first_play_pgc", pgc),
		FieldPtr("ptl_mait", ptlMait),
		FieldPtr("vts_atrt", vtsAtrt),
		FieldPtr("txtdt_mgi", txtdtMgi),
		FieldPtr("pgci_ut", pgciUT),
		FieldPtr("menu_c_adt", cAdt),
		FieldPtr("menu_vobu_admap", vobuAdmap),
		FieldPtr("vtsi_mat", vtsiMat),
		FieldPtr("vts_ptt_srpt", vtsPttSrpt),
		FieldPtr("vts_pgcit", pgcit),
		FieldPtr("vts_tmapt", vtsTmapt),
		FieldPtr("vts_c_adt", cAdt),
		FieldPtr("vts_vobu_admap", vobuAdmap),
	)
}

// rec reads one native-owned record through its descriptor. Packed
// records can place multi-byte fields at any offset, so every read
// goes through the computed layout instead of Go struct fields.
type rec struct {
	ptr  uintptr
	desc *StructDesc
}

func (r rec) valid() bool { return r.ptr != 0 }

func (r rec) raw() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(r.ptr)), r.desc.Size())
}

func (r rec) uint(name string) uint64 {
	v, err := r.desc.Uint(r.raw(), name)
	if err != nil {
		panic(err)
	}
	return v
}

func (r rec) offset(name string) uintptr {
	off, err := r.desc.OffsetOf(name)
	if err != nil {
		panic(err)
	}
	return uintptr(off)
}

func (r rec) pointer(name string) uintptr {
	return readPointer(r.ptr + r.offset(name))
}

func (r rec) bytes(name string, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(r.ptr+r.offset(name))), n)
}

func descFor(name string) *StructDesc {
	return mustStruct(nativeStructs, name)
}

func mirrorUint(d *StructDesc, raw []byte, name string) uint64 {
	v, err := d.Uint(raw, name)
	if err != nil {
		panic(err)
	}
	return v
}

// DVDTime is a BCD coded duration with the frame rate folded into the
// top bits of the frame byte.
type DVDTime struct {
	Hour   uint8
	Minute uint8
	Second uint8
	FrameU uint8
}

// VMCommand is one 8 byte virtual machine instruction.
type VMCommand [commandDataSize]byte

// VideoAttr is the packed video attribute record.
type VideoAttr struct{ raw [videoAttrSize]byte }

func (a *VideoAttr) bits(name string) uint8 {
	return uint8(mirrorUint(descFor("video_attr_t"), a.raw[:], name))
}

func (a *VideoAttr) MPEGVersion() uint8        { return a.bits("mpeg_version") }
func (a *VideoAttr) VideoFormat() uint8        { return a.bits("video_format") }
func (a *VideoAttr) DisplayAspectRatio() uint8 { return a.bits("display_aspect_ratio") }
func (a *VideoAttr) PermittedDF() uint8        { return a.bits("permitted_df") }
func (a *VideoAttr) Line21CC1() bool           { return a.bits("line21_cc_1") != 0 }
func (a *VideoAttr) Line21CC2() bool           { return a.bits("line21_cc_2") != 0 }
func (a *VideoAttr) BitRate() uint8            { return a.bits("bit_rate") }
func (a *VideoAttr) PictureSize() uint8        { return a.bits("picture_size") }
func (a *VideoAttr) Letterboxed() bool         { return a.bits("letterboxed") != 0 }
func (a *VideoAttr) FilmMode() bool            { return a.bits("film_mode") != 0 }

// AudioAttr is the packed audio attribute record. The trailing byte
// overlays the karaoke and surround variants; ApplicationMode says
// which one applies.
type AudioAttr struct{ raw [audioAttrSize]byte }

func (a *AudioAttr) field(name string) uint64 {
	return mirrorUint(descFor("audio_attr_t"), a.raw[:], name)
}

func (a *AudioAttr) AudioFormat() uint8           { return uint8(a.field("audio_format")) }
func (a *AudioAttr) MultichannelExtension() bool  { return a.field("multichannel_extension") != 0 }
func (a *AudioAttr) LangType() uint8              { return uint8(a.field("lang_type")) }
func (a *AudioAttr) ApplicationMode() uint8       { return uint8(a.field("application_mode")) }
func (a *AudioAttr) Quantization() uint8          { return uint8(a.field("quantization")) }
func (a *AudioAttr) SampleFrequency() uint8       { return uint8(a.field("sample_frequency")) }
func (a *AudioAttr) Channels() uint8              { return uint8(a.field("channels")) }
func (a *AudioAttr) LangCode() uint16             { return uint16(a.field("lang_code")) }
func (a *AudioAttr) LangExtension() uint8         { return uint8(a.field("lang_extension")) }
func (a *AudioAttr) CodeExtension() uint8         { return uint8(a.field("code_extension")) }

func (a *AudioAttr) appInfoByte() byte {
	off, err := descFor("audio_attr_t").OffsetOf("app_info")
	if err != nil {
		panic(err)
	}
	return a.raw[off]
}

// KaraokeChannelAssignment decodes the karaoke variant of the
// application byte.
func (a *AudioAttr) KaraokeChannelAssignment() uint8 { return a.appInfoByte() >> 1 & 0x7 }
func (a *AudioAttr) KaraokeVersion() uint8           { return a.appInfoByte() >> 4 & 0x3 }
func (a *AudioAttr) KaraokeMCIntro() bool            { return a.appInfoByte()>>6&0x1 != 0 }
func (a *AudioAttr) KaraokeMode() bool               { return a.appInfoByte()>>7 != 0 }

// SurroundDolbyEncoded decodes the surround variant of the
// application byte.
func (a *AudioAttr) SurroundDolbyEncoded() bool { return a.appInfoByte()>>4&0x1 != 0 }

// SubpAttr is the packed subpicture attribute record.
type SubpAttr struct{ raw [subpAttrSize]byte }

func (a *SubpAttr) field(name string) uint64 {
	return mirrorUint(descFor("subp_attr_t"), a.raw[:], name)
}

func (a *SubpAttr) CodeMode() uint8      { return uint8(a.field("code_mode")) }
func (a *SubpAttr) Type() uint8          { return uint8(a.field("type")) }
func (a *SubpAttr) LangCode() uint16     { return uint16(a.field("lang_code")) }
func (a *SubpAttr) LangExtension() uint8 { return uint8(a.field("lang_extension")) }
func (a *SubpAttr) CodeExtension() uint8 { return uint8(a.field("code_extension")) }

// MultichannelExt is the packed multichannel gain/mix extension
// record.
type MultichannelExt struct{ raw [multichannelExtSize]byte }

func (m *MultichannelExt) flag(name string) bool {
	return mirrorUint(descFor("multichannel_ext_t"), m.raw[:], name) != 0
}

func (m *MultichannelExt) ACH0GME() bool  { return m.flag("ach0_gme") }
func (m *MultichannelExt) ACH1GME() bool  { return m.flag("ach1_gme") }
func (m *MultichannelExt) ACH2GV1E() bool { return m.flag("ach2_gv1e") }
func (m *MultichannelExt) ACH2GV2E() bool { return m.flag("ach2_gv2e") }
func (m *MultichannelExt) ACH2GM1E() bool { return m.flag("ach2_gm1e") }
func (m *MultichannelExt) ACH2GM2E() bool { return m.flag("ach2_gm2e") }
func (m *MultichannelExt) ACH3GV1E() bool { return m.flag("ach3_gv1e") }
func (m *MultichannelExt) ACH3GV2E() bool { return m.flag("ach3_gv2e") }
func (m *MultichannelExt) ACH3GMAE() bool { return m.flag("ach3_gmAe") }
func (m *MultichannelExt) ACH3SE2E() bool { return m.flag("ach3_se2e") }
func (m *MultichannelExt) ACH4GV1E() bool { return m.flag("ach4_gv1e") }
func (m *MultichannelExt) ACH4GV2E() bool { return m.flag("ach4_gv2e") }
func (m *MultichannelExt) ACH4GMBE() bool { return m.flag("ach4_gmBe") }
func (m *MultichannelExt) ACH4SEBE() bool { return m.flag("ach4_seBe") }

// UserOps is the packed prohibited user operations mask.
type UserOps struct{ raw [userOpsSize]byte }

// Prohibited reports one named operation bit. Unknown names report
// false.
func (u *UserOps) Prohibited(name string) bool {
	v, err := descFor("user_ops_t").Uint(u.raw[:], name)
	if err != nil {
		return false
	}
	return v != 0
}

func (u *UserOps) flag(name string) bool { return u.Prohibited(name) }

func (u *UserOps) TitleOrTimePlay() bool        { return u.flag("title_or_time_play") }
func (u *UserOps) ChapterSearchOrPlay() bool    { return u.flag("chapter_search_or_play") }
func (u *UserOps) TitlePlay() bool              { return u.flag("title_play") }
func (u *UserOps) Stop() bool                   { return u.flag("stop") }
func (u *UserOps) GoUp() bool                   { return u.flag("go_up") }
func (u *UserOps) TimeOrChapterSearch() bool    { return u.flag("time_or_chapter_search") }
func (u *UserOps) PrevOrTopPGSearch() bool      { return u.flag("prev_or_top_pg_search") }
func (u *UserOps) NextPGSearch() bool           { return u.flag("next_pg_search") }
func (u *UserOps) ForwardScan() bool            { return u.flag("forward_scan") }
func (u *UserOps) BackwardScan() bool           { return u.flag("backward_scan") }
func (u *UserOps) TitleMenuCall() bool          { return u.flag("title_menu_call") }
func (u *UserOps) RootMenuCall() bool           { return u.flag("root_menu_call") }
func (u *UserOps) SubpicMenuCall() bool         { return u.flag("subpic_menu_call") }
func (u *UserOps) AudioMenuCall() bool          { return u.flag("audio_menu_call") }
func (u *UserOps) AngleMenuCall() bool          { return u.flag("angle_menu_call") }
func (u *UserOps) ChapterMenuCall() bool        { return u.flag("chapter_menu_call") }
func (u *UserOps) Resume() bool                 { return u.flag("resume") }
func (u *UserOps) ButtonSelectOrActivate() bool { return u.flag("button_select_or_activate") }
func (u *UserOps) StillOff() bool               { return u.flag("still_off") }
func (u *UserOps) PauseOn() bool                { return u.flag("pause_on") }
func (u *UserOps) AudioStreamChange() bool      { return u.flag("audio_stream_change") }
func (u *UserOps) SubpicStreamChange() bool     { return u.flag("subpic_stream_change") }
func (u *UserOps) AngleChange() bool            { return u.flag("angle_change") }
func (u *UserOps) KaraokeAudioPresModeChange() bool {
	return u.flag("karaoke_audio_pres_mode_change")
}
func (u *UserOps) VideoPresModeChange() bool { return u.flag("video_pres_mode_change") }

// Cell block modes and types.
const (
	BlockModeNotInBlock = 0
	BlockModeFirstCell  = 1
	BlockModeInBlock    = 2
	BlockModeLastCell   = 3

	BlockTypeNone       = 0
	BlockTypeAngleBlock = 1
)

// CellPlayback is the packed cell playback record.
type CellPlayback struct{ raw [cellPlaybackSize]byte }

func (c *CellPlayback) field(name string) uint64 {
	return mirrorUint(descFor("cell_playback_t"), c.raw[:], name)
}

func (c *CellPlayback) BlockMode() uint8         { return uint8(c.field("block_mode")) }
func (c *CellPlayback) BlockType() uint8         { return uint8(c.field("block_type")) }
func (c *CellPlayback) SeamlessPlay() bool       { return c.field("seamless_play") != 0 }
func (c *CellPlayback) Interleaved() bool        { return c.field("interleaved") != 0 }
func (c *CellPlayback) STCDiscontinuity() bool   { return c.field("stc_discontinuity") != 0 }
func (c *CellPlayback) SeamlessAngle() bool      { return c.field("seamless_angle") != 0 }
func (c *CellPlayback) PlaybackMode() uint8      { return uint8(c.field("playback_mode")) }
func (c *CellPlayback) Restricted() bool         { return c.field("restricted") != 0 }
func (c *CellPlayback) CellType() uint8          { return uint8(c.field("cell_type")) }
func (c *CellPlayback) StillTime() uint8         { return uint8(c.field("still_time")) }
func (c *CellPlayback) CellCmdNr() uint8         { return uint8(c.field("cell_cmd_nr")) }
func (c *CellPlayback) FirstSector() uint32      { return uint32(c.field("first_sector")) }
func (c *CellPlayback) FirstILVUEndSector() uint32 {
	return uint32(c.field("first_ilvu_end_sector"))
}
func (c *CellPlayback) LastVOBUStartSector() uint32 {
	return uint32(c.field("last_vobu_start_sector"))
}
func (c *CellPlayback) LastSector() uint32 { return uint32(c.field("last_sector")) }

func (c *CellPlayback) PlaybackTime() DVDTime {
	off, err := descFor("cell_playback_t").OffsetOf("playback_time")
	if err != nil {
		panic(err)
	}
	return DVDTime{c.raw[off], c.raw[off+1], c.raw[off+2], c.raw[off+3]}
}

// CellPosition is the packed cell position record.
type CellPosition struct{ raw [cellPositionSize]byte }

func (c *CellPosition) VOBIDNr() uint16 {
	return uint16(mirrorUint(descFor("cell_position_t"), c.raw[:], "vob_id_nr"))
}
func (c *CellPosition) CellNr() uint8 {
	return uint8(mirrorUint(descFor("cell_position_t"), c.raw[:], "cell_nr"))
}

// PlaybackType is the packed title playback capability byte.
type PlaybackType struct{ raw [playbackTypeSize]byte }

func (p *PlaybackType) flag(name string) bool {
	return mirrorUint(descFor("playback_type_t"), p.raw[:], name) != 0
}

func (p *PlaybackType) MultiOrRandomPGCTitle() bool { return p.flag("multi_or_random_pgc_title") }
func (p *PlaybackType) JLCExistsInCellCmd() bool    { return p.flag("jlc_exists_in_cell_cmd") }
func (p *PlaybackType) JLCExistsInPrePostCmd() bool { return p.flag("jlc_exists_in_prepost_cmd") }
func (p *PlaybackType) JLCExistsInButtonCmd() bool  { return p.flag("jlc_exists_in_button_cmd") }
func (p *PlaybackType) JLCExistsInTTDom() bool      { return p.flag("jlc_exists_in_tt_dom") }
func (p *PlaybackType) ChapterSearchOrPlay() bool   { return p.flag("chapter_search_or_play") }
func (p *PlaybackType) TitleOrTimePlay() bool       { return p.flag("title_or_time_play") }

// TitleInfo is one entry of the title search pointer table.
type TitleInfo struct{ raw [titleInfoSize]byte }

func (t *TitleInfo) field(name string) uint64 {
	return mirrorUint(descFor("title_info_t"), t.raw[:], name)
}

func (t *TitleInfo) PlaybackType() *PlaybackType { return (*PlaybackType)(unsafe.Pointer(t)) }
func (t *TitleInfo) NrOfAngles() uint8           { return uint8(t.field("nr_of_angles")) }
func (t *TitleInfo) NrOfPTTs() uint16            { return uint16(t.field("nr_of_ptts")) }
func (t *TitleInfo) ParentalID() uint16          { return uint16(t.field("parental_id")) }
func (t *TitleInfo) TitleSetNr() uint8           { return uint8(t.field("title_set_nr")) }
func (t *TitleInfo) VTSTTN() uint8               { return uint8(t.field("vts_ttn")) }
func (t *TitleInfo) TitleSetSector() uint32      { return uint32(t.field("title_set_sector")) }

// PTTInfo maps one part-of-title to its program chain and program.
type PTTInfo struct {
	PGCN uint16
	PGN  uint16
}

// PGCCommandTbl wraps a native command table.
type PGCCommandTbl struct{ rec }

func (t PGCCommandTbl) NrOfPre() uint16   { return uint16(t.uint("nr_of_pre")) }
func (t PGCCommandTbl) NrOfPost() uint16  { return uint16(t.uint("nr_of_post")) }
func (t PGCCommandTbl) NrOfCell() uint16  { return uint16(t.uint("nr_of_cell")) }
func (t PGCCommandTbl) LastByte() uint16  { return uint16(t.uint("last_byte")) }

func commandAt(base uintptr, i int) VMCommand {
	var cmd VMCommand
	copy(cmd[:], unsafe.Slice((*byte)(unsafe.Pointer(base+uintptr(i*commandDataSize))), commandDataSize))
	return cmd
}

func (t PGCCommandTbl) PreCmd(i int) VMCommand  { return commandAt(t.pointer("pre_cmds"), i) }
func (t PGCCommandTbl) PostCmd(i int) VMCommand { return commandAt(t.pointer("post_cmds"), i) }
func (t PGCCommandTbl) CellCmd(i int) VMCommand { return commandAt(t.pointer("cell_cmds"), i) }

// PGC wraps a native program chain. The command table, program map
// and cell table pointers land past the packed fixed region, at
// offsets no aligned host struct could mirror, so every access walks
// the descriptor.
type PGC struct{ rec }

func newPGC(ptr uintptr) PGC { return PGC{rec{ptr: ptr, desc: descFor("pgc_t")}} }

func (p PGC) NrOfPrograms() uint8   { return uint8(p.uint("nr_of_programs")) }
func (p PGC) NrOfCells() uint8      { return uint8(p.uint("nr_of_cells")) }
func (p PGC) NextPGCNr() uint16     { return uint16(p.uint("next_pgc_nr")) }
func (p PGC) PrevPGCNr() uint16     { return uint16(p.uint("prev_pgc_nr")) }
func (p PGC) GoUpPGCNr() uint16     { return uint16(p.uint("goup_pgc_nr")) }
func (p PGC) PGPlaybackMode() uint8 { return uint8(p.uint("pg_playback_mode")) }
func (p PGC) StillTime() uint8      { return uint8(p.uint("still_time")) }

func (p PGC) PlaybackTime() DVDTime {
	b := p.bytes("playback_time", dvdTimeSize)
	return DVDTime{b[0], b[1], b[2], b[3]}
}

func (p PGC) ProhibitedOps() *UserOps {
	return (*UserOps)(unsafe.Pointer(p.ptr + p.offset("prohibited_ops")))
}

func (p PGC) AudioControl(stream int) uint16 {
	b := p.bytes("audio_control", 16)
	return uint16(readUint(b[stream*2:], 2))
}

func (p PGC) SubpControl(stream int) uint32 {
	b := p.bytes("subp_control", 128)
	return uint32(readUint(b[stream*4:], 4))
}

func (p PGC) Palette(i int) uint32 {
	b := p.bytes("palette", 64)
	return uint32(readUint(b[i*4:], 4))
}

func (p PGC) CommandTbl() (PGCCommandTbl, bool) {
	ptr := p.pointer("command_tbl")
	return PGCCommandTbl{rec{ptr: ptr, desc: descFor("pgc_command_tbl_t")}}, ptr != 0
}

func (p PGC) ProgramMap(program int) uint8 {
	base := p.pointer("program_map")
	if base == 0 {
		return 0
	}
	return *(*uint8)(unsafe.Pointer(base + uintptr(program)))
}

func (p PGC) CellPlayback(cell int) *CellPlayback {
	base := p.pointer("cell_playback")
	if base == 0 {
		return nil
	}
	return (*CellPlayback)(unsafe.Pointer(base + uintptr(cell*cellPlaybackSize)))
}

func (p PGC) CellPosition(cell int) *CellPosition {
	base := p.pointer("cell_position")
	if base == 0 {
		return nil
	}
	return (*CellPosition)(unsafe.Pointer(base + uintptr(cell*cellPositionSize)))
}

// PGCISRP is one program chain search pointer.
type PGCISRP struct{ rec }

func (s PGCISRP) EntryID() uint8       { return uint8(s.uint("entry_id")) }
func (s PGCISRP) BlockMode() uint8     { return uint8(s.uint("block_mode")) }
func (s PGCISRP) BlockType() uint8     { return uint8(s.uint("block_type")) }
func (s PGCISRP) PTLIDMask() uint16    { return uint16(s.uint("ptl_id_mask")) }
func (s PGCISRP) PGCStartByte() uint32 { return uint32(s.uint("pgc_start_byte")) }

func (s PGCISRP) PGC() (PGC, bool) {
	ptr := s.pointer("pgc")
	return newPGC(ptr), ptr != 0
}

// PGCIT wraps a native program chain information table.
type PGCIT struct{ rec }

func newPGCIT(ptr uintptr) PGCIT { return PGCIT{rec{ptr: ptr, desc: descFor("pgcit_t")}} }

func (t PGCIT) NrOfPGCISRP() uint16 { return uint16(t.uint("nr_of_pgci_srp")) }
func (t PGCIT) LastByte() uint32    { return uint32(t.uint("last_byte")) }

func (t PGCIT) SRP(i int) PGCISRP {
	desc := descFor("pgci_srp_t")
	base := t.pointer("pgci_srp")
	return PGCISRP{rec{ptr: base + uintptr(i*desc.Size()), desc: desc}}
}

// PGCILU is one language unit of the menu PGCI table.
type PGCILU struct{ rec }

func (l PGCILU) LangCode() uint16      { return uint16(l.uint("lang_code")) }
func (l PGCILU) LangExtension() uint8  { return uint8(l.uint("lang_extension")) }
func (l PGCILU) Exists() uint8         { return uint8(l.uint("exists")) }
func (l PGCILU) LangStartByte() uint32 { return uint32(l.uint("lang_start_byte")) }

func (l PGCILU) PGCIT() (PGCIT, bool) {
	ptr := l.pointer("pgcit")
	return newPGCIT(ptr), ptr != 0
}

// PGCIUT wraps the menu PGCI unit table.
type PGCIUT struct{ rec }

func (t PGCIUT) NrOfLUs() uint16  { return uint16(t.uint("nr_of_lus")) }
func (t PGCIUT) LastByte() uint32 { return uint32(t.uint("last_byte")) }

func (t PGCIUT) LU(i int) PGCILU {
	desc := descFor("pgci_lu_t")
	base := t.pointer("lu")
	return PGCILU{rec{ptr: base + uintptr(i*desc.Size()), desc: desc}}
}

// CellAdr is one cell address table entry.
type CellAdr struct{ rec }

func (c CellAdr) VOBID() uint16       { return uint16(c.uint("vob_id")) }
func (c CellAdr) CellID() uint8       { return uint8(c.uint("cell_id")) }
func (c CellAdr) StartSector() uint32 { return uint32(c.uint("start_sector")) }
func (c CellAdr) LastSector() uint32  { return uint32(c.uint("last_sector")) }

// CAdT wraps a native cell address table.
type CAdT struct{ rec }

func (t CAdT) NrOfVOBs() uint16 { return uint16(t.uint("nr_of_vobs")) }
func (t CAdT) LastByte() uint32 { return uint32(t.uint("last_byte")) }

// NrOfEntries derives the entry count from the table length, the way
// the native reader does.
func (t CAdT) NrOfEntries() int {
	desc := descFor("cell_adr_t")
	return int(t.LastByte()+1-8) / desc.Size()
}

func (t CAdT) Entry(i int) CellAdr {
	desc := descFor("cell_adr_t")
	base := t.pointer("cell_adr_table")
	return CellAdr{rec{ptr: base + uintptr(i*desc.Size()), desc: desc}}
}

// VOBUAdMap wraps a native VOBU address map.
type VOBUAdMap struct{ rec }

func (m VOBUAdMap) LastByte() uint32 { return uint32(m.uint("last_byte")) }

func (m VOBUAdMap) NrOfEntries() int { return int(m.LastByte()+1-4) / 4 }

func (m VOBUAdMap) StartSector(i int) uint32 {
	base := m.pointer("vobu_start_sectors")
	return *(*uint32)(unsafe.Pointer(base + uintptr(i*4)))
}

// TTSRPT wraps the native title search pointer table.
type TTSRPT struct{ rec }

func (t TTSRPT) NrOfSRPTs() uint16 { return uint16(t.uint("nr_of_srpts")) }
func (t TTSRPT) LastByte() uint32  { return uint32(t.uint("last_byte")) }

func (t TTSRPT) Title(i int) *TitleInfo {
	base := t.pointer("title")
	if base == 0 {
		return nil
	}
	return (*TitleInfo)(unsafe.Pointer(base + uintptr(i*titleInfoSize)))
}

// PTLMAITCountry is one country block of the parental management
// table.
type PTLMAITCountry struct{ rec }

func (c PTLMAITCountry) CountryCode() uint16 { return uint16(c.uint("country_code")) }
func (c PTLMAITCountry) StartByte() uint16   { return uint16(c.uint("pf_ptl_mai_start_byte")) }

// Level returns the parental mask for one VTS row and level column.
// Row 0 is the VMG row.
func (c PTLMAITCountry) Level(vts int, level int) uint16 {
	base := c.pointer("pf_ptl_mai")
	if base == 0 || level < 0 || level >= ptlMaitNumLevel {
		return 0
	}
	addr := base + uintptr(vts*ptlMaitNumLevel*2+level*2)
	return *(*uint16)(unsafe.Pointer(addr))
}

// PTLMAIT wraps the native parental management table.
type PTLMAIT struct{ rec }

func (t PTLMAIT) NrOfCountries() uint16 { return uint16(t.uint("nr_of_countries")) }
func (t PTLMAIT) NrOfVTSs() uint16      { return uint16(t.uint("nr_of_vtss")) }

func (t PTLMAIT) Country(i int) PTLMAITCountry {
	desc := descFor("ptl_mait_country_t")
	base := t.pointer("countries")
	return PTLMAITCountry{rec{ptr: base + uintptr(i*desc.Size()), desc: desc}}
}

// VTSAttributes is the packed per-title-set attribute block of the
// VMG attribute table.
type VTSAttributes struct{ raw [vtsAttributesSize]byte }

func (v *VTSAttributes) field(name string) uint64 {
	return mirrorUint(descFor("vts_attributes_t"), v.raw[:], name)
}

func (v *VTSAttributes) at(name string) uintptr {
	off, err := descFor("vts_attributes_t").OffsetOf(name)
	if err != nil {
		panic(err)
	}
	return uintptr(unsafe.Pointer(&v.raw[off]))
}

func (v *VTSAttributes) LastByte() uint32 { return uint32(v.field("last_byte")) }
func (v *VTSAttributes) VTSCat() uint32   { return uint32(v.field("vts_cat")) }

func (v *VTSAttributes) MenuVideoAttr() *VideoAttr {
	return (*VideoAttr)(unsafe.Pointer(v.at("vtsm_vobs_attr")))
}
func (v *VTSAttributes) NrOfMenuAudioStreams() uint8 {
	return uint8(v.field("nr_of_vtsm_audio_streams"))
}
func (v *VTSAttributes) MenuAudioAttr() *AudioAttr {
	return (*AudioAttr)(unsafe.Pointer(v.at("vtsm_audio_attr")))
}
func (v *VTSAttributes) NrOfMenuSubpStreams() uint8 {
	return uint8(v.field("nr_of_vtsm_subp_streams"))
}
func (v *VTSAttributes) MenuSubpAttr() *SubpAttr {
	return (*SubpAttr)(unsafe.Pointer(v.at("vtsm_subp_attr")))
}
func (v *VTSAttributes) TitleVideoAttr() *VideoAttr {
	return (*VideoAttr)(unsafe.Pointer(v.at("vtstt_vobs_video_attr")))
}
func (v *VTSAttributes) NrOfTitleAudioStreams() uint8 {
	return uint8(v.field("nr_of_vtstt_audio_streams"))
}
func (v *VTSAttributes) TitleAudioAttr(i int) *AudioAttr {
	return (*AudioAttr)(unsafe.Pointer(v.at("vtstt_audio_attr") + uintptr(i*audioAttrSize)))
}
func (v *VTSAttributes) NrOfTitleSubpStreams() uint8 {
	return uint8(v.field("nr_of_vtstt_subp_streams"))
}
func (v *VTSAttributes) TitleSubpAttr(i int) *SubpAttr {
	return (*SubpAttr)(unsafe.Pointer(v.at("vtstt_subp_attr") + uintptr(i*subpAttrSize)))
}

// VTSAtrT wraps the native VTS attribute table.
type VTSAtrT struct{ rec }

func (t VTSAtrT) NrOfVTSs() uint16 { return uint16(t.uint("nr_of_vtss")) }
func (t VTSAtrT) LastByte() uint32 { return uint32(t.uint("last_byte")) }

func (t VTSAtrT) VTS(i int) *VTSAttributes {
	base := t.pointer("vts")
	if base == 0 {
		return nil
	}
	return (*VTSAttributes)(unsafe.Pointer(base + uintptr(i*vtsAttributesSize)))
}

func (t VTSAtrT) Offset(i int) uint32 {
	base := t.pointer("vts_atrt_offsets")
	if base == 0 {
		return 0
	}
	return *(*uint32)(unsafe.Pointer(base + uintptr(i*4)))
}

// TxtDt is one packed text data block.
type TxtDt struct{ raw [txtDtSize]byte }

func (t *TxtDt) field(name string) uint64 {
	return mirrorUint(descFor("txtdt_t"), t.raw[:], name)
}

func (t *TxtDt) LastByte() uint32   { return uint32(t.field("last_byte")) }
func (t *TxtDt) TypeOfInfo() uint8  { return uint8(t.field("type_of_info")) }
func (t *TxtDt) Offset() uint16     { return uint16(t.field("offset")) }

func (t *TxtDt) Text() string {
	off, err := descFor("txtdt_t").OffsetOf("text")
	if err != nil {
		panic(err)
	}
	return cStringField(t.raw[off : off+12])
}

// TxtDtLU is one language unit of the text data manager.
type TxtDtLU struct{ rec }

func (l TxtDtLU) LangCode() uint16 { return uint16(l.uint("lang_code")) }
func (l TxtDtLU) CharSet() uint8   { return uint8(l.uint("char_set")) }
func (l TxtDtLU) StartByte() uint32 {
	return uint32(l.uint("txtdt_start_byte"))
}

func (l TxtDtLU) TxtDt() *TxtDt {
	ptr := l.pointer("txtdt")
	if ptr == 0 {
		return nil
	}
	return (*TxtDt)(unsafe.Pointer(ptr))
}

// TxtDtMgI wraps the native text data manager.
type TxtDtMgI struct{ rec }

func (t TxtDtMgI) DiscName() string {
	return cStringField(t.bytes("disc_name", 12))
}
func (t TxtDtMgI) NrOfLanguageUnits() uint16 { return uint16(t.uint("nr_of_language_units")) }

func (t TxtDtMgI) LU(i int) TxtDtLU {
	desc := descFor("txtdt_lu_t")
	base := t.pointer("lu")
	return TxtDtLU{rec{ptr: base + uintptr(i*desc.Size()), desc: desc}}
}

// TTU is one title unit of the part-of-title search table.
type TTU struct{ rec }

func (t TTU) NrOfPTTs() uint16 { return uint16(t.uint("nr_of_ptts")) }

func (t TTU) PTT(i int) PTTInfo {
	base := t.pointer("ptt")
	if base == 0 {
		return PTTInfo{}
	}
	addr := base + uintptr(i*pttInfoSize)
	return PTTInfo{
		PGCN: *(*uint16)(unsafe.Pointer(addr)),
		PGN:  *(*uint16)(unsafe.Pointer(addr + 2)),
	}
}

// VTSPTTSrPT wraps the native part-of-title search pointer table.
type VTSPTTSrPT struct{ rec }

func (t VTSPTTSrPT) NrOfSRPTs() uint16 { return uint16(t.uint("nr_of_srpts")) }
func (t VTSPTTSrPT) LastByte() uint32  { return uint32(t.uint("last_byte")) }

func (t VTSPTTSrPT) Title(i int) TTU {
	desc := descFor("ttu_t")
	base := t.pointer("title")
	return TTU{rec{ptr: base + uintptr(i*desc.Size()), desc: desc}}
}

func (t VTSPTTSrPT) TTUOffset(i int) uint32 {
	base := t.pointer("ttu_offset")
	if base == 0 {
		return 0
	}
	return *(*uint32)(unsafe.Pointer(base + uintptr(i*4)))
}

// VTSTMap is one time map.
type VTSTMap struct{ rec }

func (m VTSTMap) TMU() uint8           { return uint8(m.uint("tmu")) }
func (m VTSTMap) NrOfEntries() uint16  { return uint16(m.uint("nr_of_entries")) }

func (m VTSTMap) MapEnt(i int) uint32 {
	base := m.pointer("map_ent")
	if base == 0 {
		return 0
	}
	return *(*uint32)(unsafe.Pointer(base + uintptr(i*4)))
}

// VTSTMapT wraps the native time map table.
type VTSTMapT struct{ rec }

func (t VTSTMapT) NrOfTMaps() uint16 { return uint16(t.uint("nr_of_tmaps")) }
func (t VTSTMapT) LastByte() uint32  { return uint32(t.uint("last_byte")) }

func (t VTSTMapT) TMap(i int) VTSTMap {
	desc := descFor("vts_tmap_t")
	base := t.pointer("tmap")
	return VTSTMap{rec{ptr: base + uintptr(i*desc.Size()), desc: desc}}
}

func (t VTSTMapT) TMapOffset(i int) uint32 {
	base := t.pointer("tmap_offset")
	if base == 0 {
		return 0
	}
	return *(*uint32)(unsafe.Pointer(base + uintptr(i*4)))
}

// VMGIMat is the packed video manager information management table.
type VMGIMat struct{ raw [vmgiMatSize]byte }

func (m *VMGIMat) field(name string) uint64 {
	return mirrorUint(descFor("vmgi_mat_t"), m.raw[:], name)
}

func (m *VMGIMat) at(name string) uintptr {
	off, err := descFor("vmgi_mat_t").OffsetOf(name)
	if err != nil {
		panic(err)
	}
	return uintptr(unsafe.Pointer(&m.raw[off]))
}

func (m *VMGIMat) Identifier() string {
	return cStringField(m.raw[:12])
}
func (m *VMGIMat) LastSector() uint32           { return uint32(m.field("vmg_last_sector")) }
func (m *VMGIMat) VMGILastSector() uint32       { return uint32(m.field("vmgi_last_sector")) }
func (m *VMGIMat) SpecificationVersion() uint8  { return uint8(m.field("specification_version")) }
func (m *VMGIMat) Category() uint32             { return uint32(m.field("vmg_category")) }
func (m *VMGIMat) NrOfVolumes() uint16          { return uint16(m.field("vmg_nr_of_volumes")) }
func (m *VMGIMat) ThisVolumeNr() uint16         { return uint16(m.field("vmg_this_volume_nr")) }
func (m *VMGIMat) DiscSide() uint8              { return uint8(m.field("disc_side")) }
func (m *VMGIMat) NrOfTitleSets() uint16        { return uint16(m.field("vmg_nr_of_title_sets")) }
func (m *VMGIMat) ProviderIdentifier() string {
	off, _ := descFor("vmgi_mat_t").OffsetOf("provider_identifier")
	return cStringField(m.raw[off : off+32])
}
func (m *VMGIMat) PosCode() uint64        { return m.field("vmg_pos_code") }
func (m *VMGIMat) VMGILastByte() uint32   { return uint32(m.field("vmgi_last_byte")) }
func (m *VMGIMat) FirstPlayPGC() uint32   { return uint32(m.field("first_play_pgc")) }
func (m *VMGIMat) VMGMVOBs() uint32       { return uint32(m.field("vmgm_vobs")) }
func (m *VMGIMat) TTSRPTSector() uint32   { return uint32(m.field("tt_srpt")) }
func (m *VMGIMat) PGCIUTSector() uint32   { return uint32(m.field("vmgm_pgci_ut")) }
func (m *VMGIMat) PTLMAITSector() uint32  { return uint32(m.field("ptl_mait")) }
func (m *VMGIMat) VTSAtrTSector() uint32  { return uint32(m.field("vts_atrt")) }
func (m *VMGIMat) TxtDtMgISector() uint32 { return uint32(m.field("txtdt_mgi")) }
func (m *VMGIMat) NrOfMenuAudioStreams() uint8 {
	return uint8(m.field("nr_of_vmgm_audio_streams"))
}
func (m *VMGIMat) NrOfMenuSubpStreams() uint8 {
	return uint8(m.field("nr_of_vmgm_subp_streams"))
}
func (m *VMGIMat) MenuVideoAttr() *VideoAttr {
	return (*VideoAttr)(unsafe.Pointer(m.at("vmgm_video_attr")))
}
func (m *VMGIMat) MenuAudioAttr() *AudioAttr {
	return (*AudioAttr)(unsafe.Pointer(m.at("vmgm_audio_attr")))
}
func (m *VMGIMat) MenuSubpAttr() *SubpAttr {
	return (*SubpAttr)(unsafe.Pointer(m.at("vmgm_subp_attr")))
}

// VTSIMat is the packed video title set information management table.
type VTSIMat struct{ raw [vtsiMatSize]byte }

func (m *VTSIMat) field(name string) uint64 {
	return mirrorUint(descFor("vtsi_mat_t"), m.raw[:], name)
}

func (m *VTSIMat) at(name string) uintptr {
	off, err := descFor("vtsi_mat_t").OffsetOf(name)
	if err != nil {
		panic(err)
	}
	return uintptr(unsafe.Pointer(&m.raw[off]))
}

func (m *VTSIMat) Identifier() string            { return cStringField(m.raw[:12]) }
func (m *VTSIMat) LastSector() uint32            { return uint32(m.field("vts_last_sector")) }
func (m *VTSIMat) VTSILastSector() uint32        { return uint32(m.field("vtsi_last_sector")) }
func (m *VTSIMat) SpecificationVersion() uint8   { return uint8(m.field("specification_version")) }
func (m *VTSIMat) Category() uint32              { return uint32(m.field("vts_category")) }
func (m *VTSIMat) VTSILastByte() uint32          { return uint32(m.field("vtsi_last_byte")) }
func (m *VTSIMat) MenuVOBs() uint32              { return uint32(m.field("vtsm_vobs")) }
func (m *VTSIMat) TitleVOBs() uint32             { return uint32(m.field("vtstt_vobs")) }
func (m *VTSIMat) PTTSRPTSector() uint32         { return uint32(m.field("vts_ptt_srpt")) }
func (m *VTSIMat) PGCITSector() uint32           { return uint32(m.field("vts_pgcit")) }
func (m *VTSIMat) TMapTSector() uint32           { return uint32(m.field("vts_tmapt")) }
func (m *VTSIMat) NrOfMenuAudioStreams() uint8   { return uint8(m.field("nr_of_vtsm_audio_streams")) }
func (m *VTSIMat) NrOfMenuSubpStreams() uint8    { return uint8(m.field("nr_of_vtsm_subp_streams")) }
func (m *VTSIMat) NrOfTitleAudioStreams() uint8  { return uint8(m.field("nr_of_vts_audio_streams")) }
func (m *VTSIMat) NrOfTitleSubpStreams() uint8   { return uint8(m.field("nr_of_vts_subp_streams")) }

func (m *VTSIMat) MenuVideoAttr() *VideoAttr {
	return (*VideoAttr)(unsafe.Pointer(m.at("vtsm_video_attr")))
}
func (m *VTSIMat) MenuAudioAttr() *AudioAttr {
	return (*AudioAttr)(unsafe.Pointer(m.at("vtsm_audio_attr")))
}
func (m *VTSIMat) MenuSubpAttr() *SubpAttr {
	return (*SubpAttr)(unsafe.Pointer(m.at("vtsm_subp_attr")))
}
func (m *VTSIMat) TitleVideoAttr() *VideoAttr {
	return (*VideoAttr)(unsafe.Pointer(m.at("vts_video_attr")))
}
func (m *VTSIMat) TitleAudioAttr(i int) *AudioAttr {
	return (*AudioAttr)(unsafe.Pointer(m.at("vts_audio_attr") + uintptr(i*audioAttrSize)))
}
func (m *VTSIMat) TitleSubpAttr(i int) *SubpAttr {
	return (*SubpAttr)(unsafe.Pointer(m.at("vts_subp_attr") + uintptr(i*subpAttrSize)))
}
func (m *VTSIMat) TitleMultichannelAttr(i int) *MultichannelExt {
	return (*MultichannelExt)(unsafe.Pointer(m.at("vts_mu_audio_attr") + uintptr(i*multichannelExtSize)))
}

var ifoProcs struct {
	open      func(uintptr, int32) uintptr
	openVMGI  func(uintptr) uintptr
	openVTSI  func(uintptr, int32) uintptr
	close     func(uintptr)

	readPTLMAIT        func(uintptr) int32
	readVTSAtrT        func(uintptr) int32
	readTTSRPT         func(uintptr) int32
	readVTSPTTSRPT     func(uintptr) int32
	readFPPGC          func(uintptr) int32
	readPGCIT          func(uintptr) int32
	readPGCIUT         func(uintptr) int32
	readVTSTMapT       func(uintptr) int32
	readCAdT           func(uintptr) int32
	readTitleCAdT      func(uintptr) int32
	readVOBUAdMap      func(uintptr) int32
	readTitleVOBUAdMap func(uintptr) int32
	readTxtDtMgI       func(uintptr) int32

	freePTLMAIT        func(uintptr)
	freeVTSAtrT        func(uintptr)
	freeTTSRPT         func(uintptr)
	freeVTSPTTSRPT     func(uintptr)
	freeFPPGC          func(uintptr)
	freePGCIT          func(uintptr)
	freePGCIUT         func(uintptr)
	freeVTSTMapT       func(uintptr)
	freeCAdT           func(uintptr)
	freeTitleCAdT      func(uintptr)
	freeVOBUAdMap      func(uintptr)
	freeTitleVOBUAdMap func(uintptr)
	freeTxtDtMgI       func(uintptr)
}

func registerIFOProcs(lib uintptr) {
	purego.RegisterLibFunc(&ifoProcs.open, lib, "ifoOpen")
	purego.RegisterLibFunc(&ifoProcs.openVMGI, lib, "ifoOpenVMGI")
	purego.RegisterLibFunc(&ifoProcs.openVTSI, lib, "ifoOpenVTSI")
	purego.RegisterLibFunc(&ifoProcs.close, lib, "ifoClose")
	purego.RegisterLibFunc(&ifoProcs.readPTLMAIT, lib, "ifoRead_PTL_MAIT")
	purego.RegisterLibFunc(&ifoProcs.readVTSAtrT, lib, "ifoRead_VTS_ATRT")
	purego.RegisterLibFunc(&ifoProcs.readTTSRPT, lib, "ifoRead_TT_SRPT")
	purego.RegisterLibFunc(&ifoProcs.readVTSPTTSRPT, lib, "ifoRead_VTS_PTT_SRPT")
	purego.RegisterLibFunc(&ifoProcs.readFPPGC, lib, "ifoRead_FP_PGC")
	purego.RegisterLibFunc(&ifoProcs.readPGCIT, lib, "ifoRead_PGCIT")
	purego.RegisterLibFunc(&ifoProcs.readPGCIUT, lib, "ifoRead_PGCI_UT")
	purego.RegisterLibFunc(&ifoProcs.readVTSTMapT, lib, "ifoRead_VTS_TMAPT")
	purego.RegisterLibFunc(&ifoProcs.readCAdT, lib, "ifoRead_C_ADT")
	purego.RegisterLibFunc(&ifoProcs.readTitleCAdT, lib, "ifoRead_TITLE_C_ADT")
	purego.RegisterLibFunc(&ifoProcs.readVOBUAdMap, lib, "ifoRead_VOBU_ADMAP")
	purego.RegisterLibFunc(&ifoProcs.readTitleVOBUAdMap, lib, "ifoRead_TITLE_VOBU_ADMAP")
	purego.RegisterLibFunc(&ifoProcs.readTxtDtMgI, lib, "ifoRead_TXTDT_MGI")
	purego.RegisterLibFunc(&ifoProcs.freePTLMAIT, lib, "ifoFree_PTL_MAIT")
	purego.RegisterLibFunc(&ifoProcs.freeVTSAtrT, lib, "ifoFree_VTS_ATRT")
	purego.RegisterLibFunc(&ifoProcs.freeTTSRPT, lib, "ifoFree_TT_SRPT")
	purego.RegisterLibFunc(&ifoProcs.freeVTSPTTSRPT, lib, "ifoFree_VTS_PTT_SRPT")
	purego.RegisterLibFunc(&ifoProcs.freeFPPGC, lib, "ifoFree_FP_PGC")
	purego.RegisterLibFunc(&ifoProcs.freePGCIT, lib, "ifoFree_PGCIT")
	purego.RegisterLibFunc(&ifoProcs.freePGCIUT, lib, "ifoFree_PGCI_UT")
	purego.RegisterLibFunc(&ifoProcs.freeVTSTMapT, lib, "ifoFree_VTS_TMAPT")
	purego.RegisterLibFunc(&ifoProcs.freeCAdT, lib, "ifoFree_C_ADT")
	purego.RegisterLibFunc(&ifoProcs.freeTitleCAdT, lib, "ifoFree_TITLE_C_ADT")
	purego.RegisterLibFunc(&ifoProcs.freeVOBUAdMap, lib, "ifoFree_VOBU_ADMAP")
	purego.RegisterLibFunc(&ifoProcs.freeTitleVOBUAdMap, lib, "ifoFree_TITLE_VOBU_ADMAP")
	purego.RegisterLibFunc(&ifoProcs.freeTxtDtMgI, lib, "ifoFree_TXTDT_MGI")
}

// IFO is an open IFO file, either the video manager information or a
// title set information file.
type IFO struct {
	handle
	reader *Reader
}

func (r *Reader) openIFO(op string, open func(uintptr) uintptr) (*IFO, error) {
	ptr, err := r.acquire()
	if err != nil {
		return nil, err
	}
	if err := r.retain(); err != nil {
		return nil, err
	}
	iptr := open(ptr)
	if iptr == 0 {
		r.releaseDependent()
		return nil, fmt.Errorf("%w: %s", ErrOpenFailed, op)
	}
	i := &IFO{reader: r}
	i.markOpen(iptr)
	return i, nil
}

// OpenIFO opens title number's IFO, loading every table the title
// kind carries. Title 0 is the video manager.
func (r *Reader) OpenIFO(title int32) (*IFO, error) {
	return r.openIFO("ifoOpen", func(ptr uintptr) uintptr {
		return ifoProcs.open(ptr, title)
	})
}

// OpenVMGI opens the video manager information with only the
// management table loaded.
func (r *Reader) OpenVMGI() (*IFO, error) {
	return r.openIFO("ifoOpenVMGI", ifoProcs.openVMGI)
}

// OpenVTSI opens a title set information file with only the
// management table loaded.
func (r *Reader) OpenVTSI(title int32) (*IFO, error) {
	return r.openIFO("ifoOpenVTSI", func(ptr uintptr) uintptr {
		return ifoProcs.openVTSI(ptr, title)
	})
}

// Close releases the IFO handle and its loaded tables.
func (i *IFO) Close() error {
	ptr, err := i.beginClose()
	if err != nil {
		return err
	}
	ifoProcs.close(ptr)
	i.reader.releaseDependent()
	return nil
}

func (i *IFO) load(op string, proc func(uintptr) int32) error {
	ptr, err := i.acquire()
	if err != nil {
		return err
	}
	if status := proc(ptr); status == 0 {
		return nativeError(op, status, "")
	}
	return nil
}

func (i *IFO) free(proc func(uintptr)) error {
	ptr, err := i.acquire()
	if err != nil {
		return err
	}
	proc(ptr)
	return nil
}

// Table loaders for IFO handles opened with OpenVMGI/OpenVTSI. The
// native read functions return nonzero on success.
func (i *IFO) LoadPTLMAIT() error    { return i.load("ifoRead_PTL_MAIT", ifoProcs.readPTLMAIT) }
func (i *IFO) LoadVTSAtrT() error    { return i.load("ifoRead_VTS_ATRT", ifoProcs.readVTSAtrT) }
func (i *IFO) LoadTTSRPT() error     { return i.load("ifoRead_TT_SRPT", ifoProcs.readTTSRPT) }
func (i *IFO) LoadVTSPTTSRPT() error { return i.load("ifoRead_VTS_PTT_SRPT", ifoProcs.readVTSPTTSRPT) }
func (i *IFO) LoadFirstPlayPGC() error { return i.load("ifoRead_FP_PGC", ifoProcs.readFPPGC) }
func (i *IFO) LoadPGCIT() error      { return i.load("ifoRead_PGCIT", ifoProcs.readPGCIT) }
func (i *IFO) LoadPGCIUT() error     { return i.load("ifoRead_PGCI_UT", ifoProcs.readPGCIUT) }
func (i *IFO) LoadVTSTMapT() error   { return i.load("ifoRead_VTS_TMAPT", ifoProcs.readVTSTMapT) }
func (i *IFO) LoadCAdT() error       { return i.load("ifoRead_C_ADT", ifoProcs.readCAdT) }
func (i *IFO) LoadTitleCAdT() error  { return i.load("ifoRead_TITLE_C_ADT", ifoProcs.readTitleCAdT) }
func (i *IFO) LoadVOBUAdMap() error  { return i.load("ifoRead_VOBU_ADMAP", ifoProcs.readVOBUAdMap) }
func (i *IFO) LoadTitleVOBUAdMap() error {
	return i.load("ifoRead_TITLE_VOBU_ADMAP", ifoProcs.readTitleVOBUAdMap)
}
func (i *IFO) LoadTxtDtMgI() error { return i.load("ifoRead_TXTDT_MGI", ifoProcs.readTxtDtMgI) }

func (i *IFO) FreePTLMAIT() error    { return i.free(ifoProcs.freePTLMAIT) }
func (i *IFO) FreeVTSAtrT() error    { return i.free(ifoProcs.freeVTSAtrT) }
func (i *IFO) FreeTTSRPT() error     { return i.free(ifoProcs.freeTTSRPT) }
func (i *IFO) FreeVTSPTTSRPT() error { return i.free(ifoProcs.freeVTSPTTSRPT) }
func (i *IFO) FreeFirstPlayPGC() error { return i.free(ifoProcs.freeFPPGC) }
func (i *IFO) FreePGCIT() error      { return i.free(ifoProcs.freePGCIT) }
func (i *IFO) FreePGCIUT() error     { return i.free(ifoProcs.freePGCIUT) }
func (i *IFO) FreeVTSTMapT() error   { return i.free(ifoProcs.freeVTSTMapT) }
func (i *IFO) FreeCAdT() error       { return i.free(ifoProcs.freeCAdT) }
func (i *IFO) FreeTitleCAdT() error  { return i.free(ifoProcs.freeTitleCAdT) }
func (i *IFO) FreeVOBUAdMap() error  { return i.free(ifoProcs.freeVOBUAdMap) }
func (i *IFO) FreeTitleVOBUAdMap() error {
	return i.free(ifoProcs.freeTitleVOBUAdMap)
}
func (i *IFO) FreeTxtDtMgI() error { return i.free(ifoProcs.freeTxtDtMgI) }

func (i *IFO) field(name string) (uintptr, error) {
	ptr, err := i.acquire()
	if err != nil {
		return 0, err
	}
	r := rec{ptr: ptr, desc: descFor("ifo_handle_t")}
	return r.pointer(name), nil
}

// VMGIMat returns the management table of a video manager IFO, or nil
// for a title set IFO.
func (i *IFO) VMGIMat() (*VMGIMat, error) {
	ptr, err := i.field("vmgi_mat")
	if err != nil || ptr == 0 {
		return nil, err
	}
	return (*VMGIMat)(unsafe.Pointer(ptr)), nil
}

// VTSIMat returns the management table of a title set IFO, or nil for
// the video manager.
func (i *IFO) VTSIMat() (*VTSIMat, error) {
	ptr, err := i.field("vtsi_mat")
	if err != nil || ptr == 0 {
		return nil, err
	}
	return (*VTSIMat)(unsafe.Pointer(ptr)), nil
}

// TTSRPT returns the loaded title search pointer table.
func (i *IFO) TTSRPT() (TTSRPT, error) {
	ptr, err := i.field("tt_srpt")
	if err != nil {
		return TTSRPT{}, err
	}
	return TTSRPT{rec{ptr: ptr, desc: descFor("tt_srpt_t")}}, nil
}

// FirstPlayPGC returns the loaded first play program chain.
func (i *IFO) FirstPlayPGC() (PGC, error) {
	ptr, err := i.field("first_play_pgc")
	if err != nil {
		return PGC{}, err
	}
	return newPGC(ptr), nil
}

// PTLMAIT returns the loaded parental management table.
func (i *IFO) PTLMAIT() (PTLMAIT, error) {
	ptr, err := i.field("ptl_mait")
	if err != nil {
		return PTLMAIT{}, err
	}
	return PTLMAIT{rec{ptr: ptr, desc: descFor("ptl_mait_t")}}, nil
}

// VTSAtrT returns the loaded title set attribute table.
func (i *IFO) VTSAtrT() (VTSAtrT, error) {
	ptr, err := i.field("vts_atrt")
	if err != nil {
		return VTSAtrT{}, err
	}
	return VTSAtrT{rec{ptr: ptr, desc: descFor("vts_atrt_t")}}, nil
}

// TxtDtMgI returns the loaded text data manager.
func (i *IFO) TxtDtMgI() (TxtDtMgI, error) {
	ptr, err := i.field("txtdt_mgi")
	if err != nil {
		return TxtDtMgI{}, err
	}
	return TxtDtMgI{rec{ptr: ptr, desc: descFor("txtdt_mgi_t")}}, nil
}

// PGCIUT returns the loaded menu PGCI unit table.
func (i *IFO) PGCIUT() (PGCIUT, error) {
	ptr, err := i.field("pgci_ut")
	if err != nil {
		return PGCIUT{}, err
	}
	return PGCIUT{rec{ptr: ptr, desc: descFor("pgci_ut_t")}}, nil
}

// MenuCAdT returns the loaded menu cell address table.
func (i *IFO) MenuCAdT() (CAdT, error) {
	ptr, err := i.field("menu_c_adt")
	if err != nil {
		return CAdT{}, err
	}
	return CAdT{rec{ptr: ptr, desc: descFor("c_adt_t")}}, nil
}

// MenuVOBUAdMap returns the loaded menu VOBU address map.
func (i *IFO) MenuVOBUAdMap() (VOBUAdMap, error) {
	ptr, err := i.field("menu_vobu_admap")
	if err != nil {
		return VOBUAdMap{}, err
	}
	return VOBUAdMap{rec{ptr: ptr, desc: descFor("vobu_admap_t")}}, nil
}

// VTSPTTSRPT returns the loaded part-of-title search pointer table.
func (i *IFO) VTSPTTSRPT() (VTSPTTSrPT, error) {
	ptr, err := i.field("vts_ptt_srpt")
	if err != nil {
		return VTSPTTSrPT{}, err
	}
	return VTSPTTSrPT{rec{ptr: ptr, desc: descFor("vts_ptt_srpt_t")}}, nil
}

// VTSPGCIT returns the loaded title program chain table.
func (i *IFO) VTSPGCIT() (PGCIT, error) {
	ptr, err := i.field("vts_pgcit")
	if err != nil {
		return PGCIT{}, err
	}
	return newPGCIT(ptr), nil
}

// VTSTMapT returns the loaded time map table.
func (i *IFO) VTSTMapT() (VTSTMapT, error) {
	ptr, err := i.field("vts_tmapt")
	if err != nil {
		return VTSTMapT{}, err
	}
	return VTSTMapT{rec{ptr: ptr, desc: descFor("vts_tmapt_t")}}, nil
}

// TitleCAdT returns the loaded title cell address table.
func (i *IFO) TitleCAdT() (CAdT, error) {
	ptr, err := i.field("vts_c_adt")
	if err != nil {
		return CAdT{}, err
	}
	return CAdT{rec{ptr: ptr, desc: descFor("c_adt_t")}}, nil
}

// TitleVOBUAdMap returns the loaded title VOBU address map.
func (i *IFO) TitleVOBUAdMap() (VOBUAdMap, error) {
	ptr, err := i.field("vts_vobu_admap")
	if err != nil {
		return VOBUAdMap{}, err
	}
	return VOBUAdMap{rec{ptr: ptr, desc: descFor("vobu_admap_t")}}, nil
}
